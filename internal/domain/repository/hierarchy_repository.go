package repository

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// UnionRepository persists unions.
type UnionRepository interface {
	List(ctx context.Context) ([]*entity.Union, error)
	FindByID(ctx context.Context, id string) (*entity.Union, error)
	Create(ctx context.Context, union *entity.Union) error
	// Update replaces the whole record.
	Update(ctx context.Context, union *entity.Union) error
	Delete(ctx context.Context, id string) error
}

// AssociationRepository persists associations.
type AssociationRepository interface {
	List(ctx context.Context) ([]*entity.Association, error)
	ListByUnion(ctx context.Context, unionID string) ([]*entity.Association, error)
	FindByID(ctx context.Context, id string) (*entity.Association, error)
	Create(ctx context.Context, association *entity.Association) error
	Update(ctx context.Context, association *entity.Association) error
	Delete(ctx context.Context, id string) error
}

// ZoneRepository persists zones.
type ZoneRepository interface {
	List(ctx context.Context) ([]*entity.Zone, error)
	ListByAssociation(ctx context.Context, associationID string) ([]*entity.Zone, error)
	FindByID(ctx context.Context, id string) (*entity.Zone, error)
	Create(ctx context.Context, zone *entity.Zone) error
	Update(ctx context.Context, zone *entity.Zone) error
	Delete(ctx context.Context, id string) error
}

// DistrictRepository persists districts.
type DistrictRepository interface {
	List(ctx context.Context) ([]*entity.District, error)
	ListByZone(ctx context.Context, zoneID string) ([]*entity.District, error)
	FindByID(ctx context.Context, id string) (*entity.District, error)
	Create(ctx context.Context, district *entity.District) error
	Update(ctx context.Context, district *entity.District) error
	Delete(ctx context.Context, id string) error
}

// ChurchRepository persists churches.
type ChurchRepository interface {
	List(ctx context.Context) ([]*entity.Church, error)
	ListByDistrict(ctx context.Context, districtID string) ([]*entity.Church, error)
	FindByID(ctx context.Context, id string) (*entity.Church, error)
	Create(ctx context.Context, church *entity.Church) error
	Update(ctx context.Context, church *entity.Church) error
	Delete(ctx context.Context, id string) error
}

// SmallGroupRepository persists small groups.
type SmallGroupRepository interface {
	List(ctx context.Context) ([]*entity.SmallGroup, error)
	ListByChurch(ctx context.Context, churchID string) ([]*entity.SmallGroup, error)
	FindByID(ctx context.Context, id string) (*entity.SmallGroup, error)
	Create(ctx context.Context, group *entity.SmallGroup) error
	Update(ctx context.Context, group *entity.SmallGroup) error
	Delete(ctx context.Context, id string) error
}
