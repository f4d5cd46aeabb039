package impl

import (
	"context"
	"log/slog"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type associationService struct {
	base
}

// NewAssociationService is the constructor for associationService.
func NewAssociationService(params ServiceParams) usecase.AssociationUsecase {
	return &associationService{base: newBase(params)}
}

// List returns the associations of a union joined with their departmental login.
func (srv *associationService) List(ctx context.Context, unionID string) ([]*usecase.AssociationRow, error) {
	associations, err := srv.repos.Associations.ListByUnion(ctx, unionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list associations")
	}

	ids := make([]string, len(associations))
	for i, a := range associations {
		ids[i] = a.ID
	}
	accounts := srv.accounts.linkedMany(ctx, ids, entity.RoleAssociation)

	rows := make([]*usecase.AssociationRow, len(associations))
	for i, a := range associations {
		rows[i] = &usecase.AssociationRow{Association: a, Departmental: accounts[a.ID]}
	}

	return rows, nil
}

// NewForm returns an empty association for unionID.
func (srv *associationService) NewForm(unionID string) *usecase.EntityForm[*entity.Association] {
	return &usecase.EntityForm[*entity.Association]{
		Entity: &entity.Association{UnionID: unionID},
	}
}

// Form returns an association and its departmental login.
func (srv *associationService) Form(ctx context.Context, id string) (*usecase.EntityForm[*entity.Association], error) {
	association, err := srv.repos.Associations.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindAssociation, id)
	}

	return &usecase.EntityForm[*entity.Association]{
		Entity:  association,
		Account: entity.AccountOf(srv.accounts.linked(ctx, id, entity.RoleAssociation)),
	}, nil
}

// Save creates or replaces an association and its departmental login.
func (srv *associationService) Save(ctx context.Context, input *usecase.AssociationInput) (*entity.Association, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.Association
	err := srv.settle(submissionKey(kindAssociation, input.ID, input.UnionID, input.Name), func() error {
		if err := requireParent(ctx, srv.repos.Unions.FindByID, kindUnion, input.UnionID); err != nil {
			return err
		}

		association := srv.build(input)
		if input.ID == "" {
			association.ID = entity.NewID(entity.PrefixAssociation)
			association.CreatedAt = association.UpdatedAt
			_, err := srv.createManaged(ctx, managedCreate{
				kind:     kindAssociation,
				role:     entity.RoleAssociation,
				entityID: association.ID,
				creds:    input.Credentials,
				create:   func(ctx context.Context) error { return srv.repos.Associations.Create(ctx, association) },
				remove:   func(ctx context.Context) error { return srv.repos.Associations.Delete(ctx, association.ID) },
			})
			if err != nil {
				return err
			}
			saved = association

			return nil
		}

		current, err := srv.repos.Associations.FindByID(ctx, input.ID)
		if err != nil {
			return notFound(err, kindAssociation, input.ID)
		}
		association.CreatedAt = current.CreatedAt
		if strings.TrimSpace(input.Credentials.Username) == "" {
			association.Config.Username = current.Config.Username
		}

		err = srv.updateManaged(ctx, managedUpdate{
			kind:     kindAssociation,
			role:     entity.RoleAssociation,
			entityID: association.ID,
			creds:    input.Credentials,
			update: func(ctx context.Context, _ string) error {
				return srv.repos.Associations.Update(ctx, association)
			},
		})
		if err != nil {
			return err
		}
		saved = association

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Association saved", slog.String("id", saved.ID))

	return saved, nil
}

func (srv *associationService) build(input *usecase.AssociationInput) *entity.Association {
	return &entity.Association{
		ID:              input.ID,
		Name:            strings.TrimSpace(input.Name),
		UnionID:         input.UnionID,
		DepartmentHead:  strings.TrimSpace(input.DepartmentHead),
		MembershipCount: input.MembershipCount.NonNegative(),
		Config: entity.AssociationConfig{
			Username:          strings.TrimSpace(input.Credentials.Username),
			AnnualBaptismGoal: input.AnnualBaptismGoal.NonNegative(),
		},
		UpdatedAt: srv.now(),
	}
}

// Delete removes an association and its departmental login.
func (srv *associationService) Delete(ctx context.Context, id string) error {
	return srv.deleteManaged(ctx, kindAssociation, id, entity.RoleAssociation, srv.repos.Associations.Delete)
}
