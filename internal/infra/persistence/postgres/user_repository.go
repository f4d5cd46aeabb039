package postgres

import (
	"context"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	crud[model.UserModel, entity.User]
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{crud[model.UserModel, entity.User]{
		db: db, kind: "user",
		idOf:    func(u *entity.User) string { return u.ID },
		toModel: fromUserDomain, toEntity: toUserDomain,
	}}
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return repo.list(ctx, "")
}

// FindByID retrieves a single user. IDs that are not UUIDs cannot exist.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}

	return repo.find(ctx, id)
}

// FindByUsername matches usernames regardless of case, like the unique index.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.first(ctx, "lower(username) = lower(?)", username)
}

// FindByRelatedEntityAndRole uses the (related_entity_id, role) index.
func (repo *userRepository) FindByRelatedEntityAndRole(ctx context.Context, relatedEntityID string, role entity.Role) (*entity.User, error) {
	return repo.first(ctx, "related_entity_id = ? AND role = ?", relatedEntityID, role.String())
}

// Create persists a new user. PostgreSQL assigns the ID, which is written
// back to user.ID together with the timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	candidate := *user
	candidate.ID = ""

	userM, err := repo.create(ctx, &candidate)
	if err != nil {
		return err
	}

	user.ID = userM.ID.String()
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	if _, err := uuid.Parse(user.ID); err != nil {
		return repository.ErrNotFound
	}

	return repo.update(ctx, user)
}

func (repo *userRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}

	return repo.delete(ctx, id)
}
