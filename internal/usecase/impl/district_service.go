package impl

import (
	"context"
	"log/slog"
	"strings"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
	"churchadmin/internal/util"
)

type districtService struct {
	base
}

// NewDistrictService is the constructor for districtService.
func NewDistrictService(params ServiceParams) usecase.DistrictUsecase {
	return &districtService{base: newBase(params)}
}

// List returns the districts of a zone joined with the zone name and the pastor login.
func (srv *districtService) List(ctx context.Context, zoneID string) ([]*usecase.DistrictRow, error) {
	var (
		districts []*entity.District
		zoneName  string
	)
	err := loadAll(ctx,
		func(ctx context.Context) error {
			var err error
			districts, err = srv.repos.Districts.ListByZone(ctx, zoneID)

			return errors.Wrap(err, "failed to list districts")
		},
		func(ctx context.Context) error {
			zone, err := srv.repos.Zones.FindByID(ctx, zoneID)
			if err != nil {
				srv.log(ctx).Warn("Failed to load zone for district list", slog.String("zoneID", zoneID), slog.Any("error", err))

				return nil
			}
			zoneName = zone.Name

			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(districts))
	for i, d := range districts {
		ids[i] = d.ID
	}
	pastors := srv.accounts.linkedMany(ctx, ids, entity.RolePastor)

	rows := make([]*usecase.DistrictRow, len(districts))
	for i, d := range districts {
		rows[i] = &usecase.DistrictRow{District: d, ZoneName: zoneName, Pastor: pastors[d.ID]}
	}

	return rows, nil
}

// NewForm returns an empty district for zoneID with default goals.
func (srv *districtService) NewForm(zoneID string) *usecase.EntityForm[*entity.District] {
	return &usecase.EntityForm[*entity.District]{
		Entity: &entity.District{ZoneID: zoneID, Goals: entity.DefaultGoals()},
	}
}

// Form returns a district and its pastor login.
func (srv *districtService) Form(ctx context.Context, id string) (*usecase.EntityForm[*entity.District], error) {
	district, err := srv.repos.Districts.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindDistrict, id)
	}
	district.Goals = district.Goals.Normalize()

	return &usecase.EntityForm[*entity.District]{
		Entity:  district,
		Account: entity.AccountOf(srv.accounts.linked(ctx, id, entity.RolePastor)),
	}, nil
}

// Save creates or replaces a district and its pastor login. Names are unique
// per zone regardless of case.
func (srv *districtService) Save(ctx context.Context, input *usecase.DistrictInput) (*entity.District, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.District
	err := srv.settle(submissionKey(kindDistrict, input.ID, input.ZoneID, input.Name), func() error {
		if err := srv.checkName(ctx, input); err != nil {
			return err
		}

		now := srv.now()
		district := &entity.District{
			ID:        input.ID,
			Name:      strings.TrimSpace(input.Name),
			ZoneID:    input.ZoneID,
			Goals:     entity.NormalizeGoals(input.Goals),
			UpdatedAt: now,
		}

		if input.ID == "" {
			district.ID = entity.NewID(entity.PrefixDistrict)
			district.CreatedAt = now
			_, err := srv.createManaged(ctx, managedCreate{
				kind:     kindDistrict,
				role:     entity.RolePastor,
				entityID: district.ID,
				creds:    input.Credentials,
				create:   func(ctx context.Context) error { return srv.repos.Districts.Create(ctx, district) },
				remove:   func(ctx context.Context) error { return srv.repos.Districts.Delete(ctx, district.ID) },
				link: func(ctx context.Context, userID string) error {
					district.PastorID = userID

					return srv.repos.Districts.Update(ctx, district)
				},
			})
			if err != nil {
				return err
			}
			saved = district

			return nil
		}

		current, err := srv.repos.Districts.FindByID(ctx, input.ID)
		if err != nil {
			return notFound(err, kindDistrict, input.ID)
		}
		district.CreatedAt = current.CreatedAt
		district.PastorID = current.PastorID

		err = srv.updateManaged(ctx, managedUpdate{
			kind:     kindDistrict,
			role:     entity.RolePastor,
			entityID: district.ID,
			creds:    input.Credentials,
			update: func(ctx context.Context, userID string) error {
				if userID != "" {
					district.PastorID = userID
				}

				return srv.repos.Districts.Update(ctx, district)
			},
		})
		if err != nil {
			return err
		}
		saved = district

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("District saved", slog.String("id", saved.ID), slog.String("pastorID", saved.PastorID))

	return saved, nil
}

// checkName verifies the zone exists and no other district in it has the same name.
func (srv *districtService) checkName(ctx context.Context, input *usecase.DistrictInput) error {
	var siblings []*entity.District
	err := loadAll(ctx,
		func(ctx context.Context) error {
			return requireParent(ctx, srv.repos.Zones.FindByID, kindZone, input.ZoneID)
		},
		func(ctx context.Context) error {
			var err error
			siblings, err = srv.repos.Districts.ListByZone(ctx, input.ZoneID)

			return errors.Wrap(err, "failed to list districts")
		},
	)
	if err != nil {
		return err
	}

	for _, d := range siblings {
		if d.ID != input.ID && util.SameName(d.Name, input.Name) {
			return domainerrors.ErrDuplicateName.WithDetails(strings.TrimSpace(input.Name))
		}
	}

	return nil
}

// Delete removes a district and its pastor login.
func (srv *districtService) Delete(ctx context.Context, id string) error {
	return srv.deleteManaged(ctx, kindDistrict, id, entity.RolePastor, srv.repos.Districts.Delete)
}
