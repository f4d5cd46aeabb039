package repository

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// UserRepository defines the standard operations for login account persistence.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by its backend-minted ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByRelatedEntityAndRole retrieves the login that manages an entity in a role.
	// Returns ErrNotFound when the entity has no such login.
	FindByRelatedEntityAndRole(ctx context.Context, relatedEntityID string, role entity.Role) (*entity.User, error)

	// Create persists a new user and fills user.ID with the assigned identifier.
	// Any ID set by the caller is ignored.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the whole record, password hash included.
	Update(ctx context.Context, user *entity.User) error

	Delete(ctx context.Context, id string) error
}
