package impl

import (
	"context"
	"log/slog"
	"strings"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type smallGroupService struct {
	base
	personnel service.PersonnelSource
}

// NewSmallGroupService is the constructor for smallGroupService.
func NewSmallGroupService(params ServiceParams) usecase.SmallGroupUsecase {
	return &smallGroupService{base: newBase(params), personnel: params.Personnel}
}

// List returns the groups of a church joined with their leader login and member count.
func (srv *smallGroupService) List(ctx context.Context, churchID string) ([]*usecase.SmallGroupRow, error) {
	var (
		groups  []*entity.SmallGroup
		members []*entity.Member
	)
	err := loadAll(ctx,
		func(ctx context.Context) error {
			var err error
			groups, err = srv.repos.SmallGroups.ListByChurch(ctx, churchID)

			return errors.Wrap(err, "failed to list small groups")
		},
		func(ctx context.Context) error {
			var err error
			members, err = srv.repos.Members.ListByChurch(ctx, churchID)

			return errors.Wrap(err, "failed to list church members")
		},
	)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(groups))
	for _, m := range members {
		counts[m.GPID]++
	}

	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	leaders := srv.accounts.linkedMany(ctx, ids, entity.RoleLeaderGP)

	rows := make([]*usecase.SmallGroupRow, len(groups))
	for i, g := range groups {
		rows[i] = &usecase.SmallGroupRow{SmallGroup: g, Leader: leaders[g.ID], MemberCount: counts[g.ID]}
	}

	return rows, nil
}

// NewForm returns an empty group for churchID with default goals.
func (srv *smallGroupService) NewForm(churchID string) *usecase.EntityForm[*entity.SmallGroup] {
	return &usecase.EntityForm[*entity.SmallGroup]{
		Entity: &entity.SmallGroup{ChurchID: churchID, Goals: entity.DefaultGoals()},
	}
}

// Form returns a group and its leader login.
func (srv *smallGroupService) Form(ctx context.Context, id string) (*usecase.EntityForm[*entity.SmallGroup], error) {
	group, err := srv.repos.SmallGroups.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindSmallGroup, id)
	}
	group.Goals = group.Goals.Normalize()

	return &usecase.EntityForm[*entity.SmallGroup]{
		Entity:  group,
		Account: entity.AccountOf(srv.accounts.linked(ctx, id, entity.RoleLeaderGP)),
	}, nil
}

// Save creates or replaces a group and its leader login.
func (srv *smallGroupService) Save(ctx context.Context, input *usecase.SmallGroupInput) (*entity.SmallGroup, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.SmallGroup
	err := srv.settle(submissionKey(kindSmallGroup, input.ID, input.ChurchID, input.Name), func() error {
		if err := requireParent(ctx, srv.repos.Churches.FindByID, kindChurch, input.ChurchID); err != nil {
			return err
		}

		group := srv.build(input)
		if input.ID == "" {
			return srv.create(ctx, group, input.Credentials, &saved)
		}

		current, err := srv.repos.SmallGroups.FindByID(ctx, input.ID)
		if err != nil {
			return notFound(err, kindSmallGroup, input.ID)
		}
		group.CreatedAt = current.CreatedAt
		group.LeaderID = current.LeaderID

		err = srv.updateManaged(ctx, managedUpdate{
			kind:     kindSmallGroup,
			role:     entity.RoleLeaderGP,
			entityID: group.ID,
			creds:    input.Credentials,
			update: func(ctx context.Context, userID string) error {
				if userID != "" {
					group.LeaderID = userID
				}

				return srv.repos.SmallGroups.Update(ctx, group)
			},
		})
		if err != nil {
			return err
		}
		saved = group

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Small group saved", slog.String("id", saved.ID), slog.String("leaderID", saved.LeaderID))

	return saved, nil
}

// CreateFromPersonnel creates a group led by a personnel candidate of the church.
func (srv *smallGroupService) CreateFromPersonnel(ctx context.Context, input *usecase.FromPersonnelInput) (*entity.SmallGroup, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if srv.personnel == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no hay fuente de personal configurada")
	}

	var saved *entity.SmallGroup
	err := srv.settle(createKey(kindSmallGroup, input.ChurchID, input.Name), func() error {
		if err := requireParent(ctx, srv.repos.Churches.FindByID, kindChurch, input.ChurchID); err != nil {
			return err
		}

		candidate, err := srv.findCandidate(ctx, input.ChurchID, input.PersonnelID)
		if err != nil {
			return err
		}
		if candidate.Email == "" {
			return domainerrors.ErrIncompleteCredentials.WithDetails("faltan: email")
		}

		group := srv.build(&usecase.SmallGroupInput{
			Name:        input.Name,
			Motto:       input.Motto,
			Verse:       input.Verse,
			MeetingDay:  input.MeetingDay,
			MeetingTime: input.MeetingTime,
			ChurchID:    input.ChurchID,
		})
		creds := entity.Credentials{
			Username: input.Username,
			Password: input.Password,
			Email:    candidate.Email,
			Name:     candidate.Name,
		}

		return srv.create(ctx, group, creds, &saved)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Small group created from personnel",
		slog.String("id", saved.ID),
		slog.String("personnelID", input.PersonnelID),
		slog.String("source", srv.personnel.Name()))

	return saved, nil
}

func (srv *smallGroupService) findCandidate(ctx context.Context, churchID, personnelID string) (*entity.Personnel, error) {
	candidates, err := srv.personnel.ListPersonnel(ctx, churchID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list personnel from %s", srv.personnel.Name())
	}
	for i := range candidates {
		if candidates[i].ID == personnelID {
			return &candidates[i], nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("personal " + personnelID)
}

func (srv *smallGroupService) create(ctx context.Context, group *entity.SmallGroup, creds entity.Credentials, saved **entity.SmallGroup) error {
	group.ID = entity.NewID(entity.PrefixSmallGroup)
	group.CreatedAt = group.UpdatedAt

	_, err := srv.createManaged(ctx, managedCreate{
		kind:     kindSmallGroup,
		role:     entity.RoleLeaderGP,
		entityID: group.ID,
		creds:    creds,
		create:   func(ctx context.Context) error { return srv.repos.SmallGroups.Create(ctx, group) },
		remove:   func(ctx context.Context) error { return srv.repos.SmallGroups.Delete(ctx, group.ID) },
		link: func(ctx context.Context, userID string) error {
			group.LeaderID = userID

			return srv.repos.SmallGroups.Update(ctx, group)
		},
	})
	if err != nil {
		return err
	}
	*saved = group

	return nil
}

func (srv *smallGroupService) build(input *usecase.SmallGroupInput) *entity.SmallGroup {
	return &entity.SmallGroup{
		ID:          input.ID,
		Name:        strings.TrimSpace(input.Name),
		Motto:       strings.TrimSpace(input.Motto),
		Verse:       strings.TrimSpace(input.Verse),
		MeetingDay:  input.MeetingDay,
		MeetingTime: input.MeetingTime,
		ChurchID:    input.ChurchID,
		Goals:       entity.NormalizeGoals(input.Goals),
		UpdatedAt:   srv.now(),
	}
}

// Delete removes a group and its leader login.
func (srv *smallGroupService) Delete(ctx context.Context, id string) error {
	return srv.deleteManaged(ctx, kindSmallGroup, id, entity.RoleLeaderGP, srv.repos.SmallGroups.Delete)
}
