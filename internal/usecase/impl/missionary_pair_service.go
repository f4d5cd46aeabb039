package impl

import (
	"context"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type missionaryPairService struct {
	base
}

// NewMissionaryPairService is the constructor for missionaryPairService.
func NewMissionaryPairService(params ServiceParams) usecase.MissionaryPairUsecase {
	return &missionaryPairService{base: newBase(params)}
}

// List returns the pairs of a group joined with their member names.
func (srv *missionaryPairService) List(ctx context.Context, gpID string) ([]*usecase.MissionaryPairRow, error) {
	var (
		pairs   []*entity.MissionaryPair
		members []*entity.Member
	)
	err := loadAll(ctx,
		func(ctx context.Context) error {
			var err error
			pairs, err = srv.repos.MissionaryPairs.ListByGroup(ctx, gpID)

			return errors.Wrap(err, "failed to list missionary pairs")
		},
		func(ctx context.Context) error {
			var err error
			members, err = srv.repos.Members.ListByGroup(ctx, gpID)

			return errors.Wrap(err, "failed to list members")
		},
	)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.FullName()
	}

	rows := make([]*usecase.MissionaryPairRow, len(pairs))
	for i, p := range pairs {
		rows[i] = &usecase.MissionaryPairRow{
			MissionaryPair: p,
			Member1Name:    names[p.Member1ID],
			Member2Name:    names[p.Member2ID],
		}
	}

	return rows, nil
}

// Save creates or replaces a pair. Both members must belong to the group.
func (srv *missionaryPairService) Save(ctx context.Context, input *usecase.MissionaryPairInput) (*entity.MissionaryPair, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.MissionaryPair
	err := srv.settle(submissionKey(kindMissionaryPair, input.ID, input.GPID, input.Member1ID+"+"+input.Member2ID), func() error {
		members, err := srv.repos.Members.ListByGroup(ctx, input.GPID)
		if err != nil {
			return errors.Wrap(err, "failed to list members")
		}
		inGroup := make(map[string]bool, len(members))
		for _, m := range members {
			inGroup[m.ID] = true
		}
		for _, id := range []string{input.Member1ID, input.Member2ID} {
			if !inGroup[id] {
				return domainerrors.ErrValidationFailed.WithDetails("el miembro " + id + " no pertenece al grupo")
			}
		}

		now := srv.now()
		pair := &entity.MissionaryPair{
			ID:        input.ID,
			Member1ID: input.Member1ID,
			Member2ID: input.Member2ID,
			GPID:      input.GPID,
			UpdatedAt: now,
		}

		if input.ID == "" {
			pair.ID = entity.NewID(entity.PrefixMissionaryPair)
			pair.CreatedAt = now
			if err := srv.repos.MissionaryPairs.Create(ctx, pair); err != nil {
				return errors.Wrap(err, "failed to create missionary pair")
			}
			srv.publish(ctx, service.EventCreated, kindMissionaryPair, pair.ID)
		} else {
			current, err := srv.repos.MissionaryPairs.FindByID(ctx, input.ID)
			if err != nil {
				return notFound(err, kindMissionaryPair, input.ID)
			}
			pair.CreatedAt = current.CreatedAt
			if err := srv.repos.MissionaryPairs.Update(ctx, pair); err != nil {
				return errors.Wrap(err, "failed to update missionary pair")
			}
			srv.publish(ctx, service.EventUpdated, kindMissionaryPair, pair.ID)
		}
		saved = pair

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete removes a pair.
func (srv *missionaryPairService) Delete(ctx context.Context, id string) error {
	if err := srv.repos.MissionaryPairs.Delete(ctx, id); err != nil {
		return notFound(err, kindMissionaryPair, id)
	}
	srv.publish(ctx, service.EventDeleted, kindMissionaryPair, id)

	return nil
}
