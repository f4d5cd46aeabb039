package impl

import (
	"context"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type zoneService struct {
	base
}

// NewZoneService is the constructor for zoneService.
func NewZoneService(params ServiceParams) usecase.ZoneUsecase {
	return &zoneService{base: newBase(params)}
}

// List returns the zones of an association.
func (srv *zoneService) List(ctx context.Context, associationID string) ([]*entity.Zone, error) {
	zones, err := srv.repos.Zones.ListByAssociation(ctx, associationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list zones")
	}

	return zones, nil
}

// Get returns one zone.
func (srv *zoneService) Get(ctx context.Context, id string) (*entity.Zone, error) {
	zone, err := srv.repos.Zones.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindZone, id)
	}

	return zone, nil
}

// Save creates or replaces a zone.
func (srv *zoneService) Save(ctx context.Context, input *usecase.ZoneInput) (*entity.Zone, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.Zone
	err := srv.settle(submissionKey(kindZone, input.ID, input.AssociationID, input.Name), func() error {
		if err := requireParent(ctx, srv.repos.Associations.FindByID, kindAssociation, input.AssociationID); err != nil {
			return err
		}

		now := srv.now()
		zone := &entity.Zone{
			ID:            input.ID,
			Name:          strings.TrimSpace(input.Name),
			AssociationID: input.AssociationID,
			UpdatedAt:     now,
		}

		if input.ID == "" {
			zone.ID = entity.NewID(entity.PrefixZone)
			zone.CreatedAt = now
			if err := srv.repos.Zones.Create(ctx, zone); err != nil {
				return errors.Wrap(err, "failed to create zone")
			}
			srv.publish(ctx, service.EventCreated, kindZone, zone.ID)
		} else {
			current, err := srv.repos.Zones.FindByID(ctx, input.ID)
			if err != nil {
				return notFound(err, kindZone, input.ID)
			}
			zone.CreatedAt = current.CreatedAt
			if err := srv.repos.Zones.Update(ctx, zone); err != nil {
				return errors.Wrap(err, "failed to update zone")
			}
			srv.publish(ctx, service.EventUpdated, kindZone, zone.ID)
		}
		saved = zone

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete removes a zone.
func (srv *zoneService) Delete(ctx context.Context, id string) error {
	if err := srv.repos.Zones.Delete(ctx, id); err != nil {
		return notFound(err, kindZone, id)
	}
	srv.publish(ctx, service.EventDeleted, kindZone, id)

	return nil
}
