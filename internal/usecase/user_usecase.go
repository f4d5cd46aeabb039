package usecase

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// UserInput replaces a login account. An empty Password keeps the stored one.
type UserInput struct {
	ID       string      `json:"-"`
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password"`
	Email    string      `json:"email" validate:"required,email"`
	Name     string      `json:"name"`
	Role     entity.Role `json:"role" validate:"required"`
	IsActive bool        `json:"isActive"`
}

// UserUsecase manages login accounts directly.
type UserUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, input *UserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	// CredentialQR renders a QR code that opens the login page with the
	// user's name filled in.
	CredentialQR(ctx context.Context, id string) ([]byte, error)
}

// PersonnelListing is the list of leader candidates and where it came from.
type PersonnelListing struct {
	Source    string             `json:"source"`
	Personnel []entity.Personnel `json:"personnel"`
}

// PersonnelUsecase exposes the configured leader candidate source.
type PersonnelUsecase interface {
	List(ctx context.Context, churchID string) (*PersonnelListing, error)
}
