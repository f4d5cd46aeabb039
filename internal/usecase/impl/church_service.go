package impl

import (
	"context"
	"log/slog"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type churchService struct {
	base
}

// NewChurchService is the constructor for churchService.
func NewChurchService(params ServiceParams) usecase.ChurchUsecase {
	return &churchService{base: newBase(params)}
}

// List returns the churches of a district joined with the district name and the director login.
func (srv *churchService) List(ctx context.Context, districtID string) ([]*usecase.ChurchRow, error) {
	var (
		churches     []*entity.Church
		districtName string
	)
	err := loadAll(ctx,
		func(ctx context.Context) error {
			var err error
			churches, err = srv.repos.Churches.ListByDistrict(ctx, districtID)

			return errors.Wrap(err, "failed to list churches")
		},
		func(ctx context.Context) error {
			district, err := srv.repos.Districts.FindByID(ctx, districtID)
			if err != nil {
				srv.log(ctx).Warn("Failed to load district for church list", slog.String("districtID", districtID), slog.Any("error", err))

				return nil
			}
			districtName = district.Name

			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(churches))
	for i, c := range churches {
		ids[i] = c.ID
	}
	directors := srv.accounts.linkedMany(ctx, ids, entity.RoleDirectorMP)

	rows := make([]*usecase.ChurchRow, len(churches))
	for i, c := range churches {
		rows[i] = &usecase.ChurchRow{Church: c, DistrictName: districtName, Director: directors[c.ID]}
	}

	return rows, nil
}

// NewForm returns an empty church for districtID.
func (srv *churchService) NewForm(districtID string) *usecase.EntityForm[*entity.Church] {
	return &usecase.EntityForm[*entity.Church]{
		Entity: &entity.Church{DistrictID: districtID},
	}
}

// Form returns a church and its director login.
func (srv *churchService) Form(ctx context.Context, id string) (*usecase.EntityForm[*entity.Church], error) {
	church, err := srv.repos.Churches.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindChurch, id)
	}

	return &usecase.EntityForm[*entity.Church]{
		Entity:  church,
		Account: entity.AccountOf(srv.accounts.linked(ctx, id, entity.RoleDirectorMP)),
	}, nil
}

// Save creates or replaces a church and its director login.
func (srv *churchService) Save(ctx context.Context, input *usecase.ChurchInput) (*entity.Church, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.Church
	err := srv.settle(submissionKey(kindChurch, input.ID, input.DistrictID, input.Name), func() error {
		if err := requireParent(ctx, srv.repos.Districts.FindByID, kindDistrict, input.DistrictID); err != nil {
			return err
		}

		now := srv.now()
		church := &entity.Church{
			ID:         input.ID,
			Name:       strings.TrimSpace(input.Name),
			DistrictID: input.DistrictID,
			Address:    strings.TrimSpace(input.Address),
			UpdatedAt:  now,
		}

		if input.ID == "" {
			church.ID = entity.NewID(entity.PrefixChurch)
			church.CreatedAt = now
			_, err := srv.createManaged(ctx, managedCreate{
				kind:     kindChurch,
				role:     entity.RoleDirectorMP,
				entityID: church.ID,
				creds:    input.Credentials,
				create:   func(ctx context.Context) error { return srv.repos.Churches.Create(ctx, church) },
				remove:   func(ctx context.Context) error { return srv.repos.Churches.Delete(ctx, church.ID) },
			})
			if err != nil {
				return err
			}
			saved = church

			return nil
		}

		current, err := srv.repos.Churches.FindByID(ctx, input.ID)
		if err != nil {
			return notFound(err, kindChurch, input.ID)
		}
		church.CreatedAt = current.CreatedAt

		err = srv.updateManaged(ctx, managedUpdate{
			kind:     kindChurch,
			role:     entity.RoleDirectorMP,
			entityID: church.ID,
			creds:    input.Credentials,
			update: func(ctx context.Context, _ string) error {
				return srv.repos.Churches.Update(ctx, church)
			},
		})
		if err != nil {
			return err
		}
		saved = church

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Church saved", slog.String("id", saved.ID))

	return saved, nil
}

// Delete removes a church and its director login.
func (srv *churchService) Delete(ctx context.Context, id string) error {
	return srv.deleteManaged(ctx, kindChurch, id, entity.RoleDirectorMP, srv.repos.Churches.Delete)
}
