package impl

import (
	"context"
	"log/slog"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type unionService struct {
	base
}

// NewUnionService is the constructor for unionService.
func NewUnionService(params ServiceParams) usecase.UnionUsecase {
	return &unionService{base: newBase(params)}
}

// List returns every union.
func (srv *unionService) List(ctx context.Context) ([]*entity.Union, error) {
	unions, err := srv.repos.Unions.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unions")
	}

	return unions, nil
}

// Get returns one union.
func (srv *unionService) Get(ctx context.Context, id string) (*entity.Union, error) {
	union, err := srv.repos.Unions.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindUnion, id)
	}

	return union, nil
}

// Save creates or replaces a union.
func (srv *unionService) Save(ctx context.Context, input *usecase.UnionInput) (*entity.Union, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.Union
	err := srv.settle(submissionKey(kindUnion, input.ID, "", input.Name), func() error {
		now := srv.now()
		union := &entity.Union{ID: input.ID, Name: strings.TrimSpace(input.Name), UpdatedAt: now}

		if input.ID == "" {
			union.ID = entity.NewID(entity.PrefixUnion)
			union.CreatedAt = now
			if err := srv.repos.Unions.Create(ctx, union); err != nil {
				return errors.Wrap(err, "failed to create union")
			}
			srv.publish(ctx, service.EventCreated, kindUnion, union.ID)
		} else {
			current, err := srv.repos.Unions.FindByID(ctx, input.ID)
			if err != nil {
				return notFound(err, kindUnion, input.ID)
			}
			union.CreatedAt = current.CreatedAt
			if err := srv.repos.Unions.Update(ctx, union); err != nil {
				return errors.Wrap(err, "failed to update union")
			}
			srv.publish(ctx, service.EventUpdated, kindUnion, union.ID)
		}
		saved = union

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Union saved", slog.String("id", saved.ID))

	return saved, nil
}

// Delete removes a union.
func (srv *unionService) Delete(ctx context.Context, id string) error {
	if err := srv.repos.Unions.Delete(ctx, id); err != nil {
		return notFound(err, kindUnion, id)
	}
	srv.publish(ctx, service.EventDeleted, kindUnion, id)

	return nil
}
