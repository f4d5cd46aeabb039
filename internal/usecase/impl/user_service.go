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

// userService implements the UserUsecase interface.
type userService struct {
	base
	qrcode service.QRCodeService
}

// NewUserService is the constructor for userService.
func NewUserService(params ServiceParams) usecase.UserUsecase {
	return &userService{base: newBase(params), qrcode: params.QRCode}
}

// List returns every login account.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.repos.Users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Get returns one login account.
func (srv *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindUser, id)
	}

	return user, nil
}

// Update replaces a login account. The role binding to the related entity is
// kept; a blank password keeps the stored hash.
func (srv *userService) Update(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	creds := entity.Credentials{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Name:     input.Name,
	}.Normalize()
	normalized := *input
	normalized.Username, normalized.Email, normalized.Name = creds.Username, creds.Email, creds.Name
	input = &normalized

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role (oneof)")
	}

	var saved *entity.User
	err := srv.settle(updateKey(kindUser, input.ID), func() error {
		current, err := srv.repos.Users.FindByID(ctx, input.ID)
		if err != nil {
			return notFound(err, kindUser, input.ID)
		}
		if err := srv.accounts.ensureUsernameAvailable(ctx, input.Username, current.ID); err != nil {
			return err
		}

		current.Role = input.Role
		current.IsActive = input.IsActive
		current.UpdatedAt = srv.now()
		if err := srv.accounts.replace(ctx, current, creds); err != nil {
			return err
		}
		srv.publish(ctx, service.EventUpdated, kindUser, current.ID)
		saved = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.String("id", saved.ID), slog.String("role", saved.Role.String()))

	return saved, nil
}

// Delete removes a login account. The related entity keeps its reference.
func (srv *userService) Delete(ctx context.Context, id string) error {
	if err := srv.repos.Users.Delete(ctx, id); err != nil {
		return notFound(err, kindUser, id)
	}
	srv.publish(ctx, service.EventDeleted, kindUser, id)

	return nil
}

// CredentialQR renders the login QR code for a user.
func (srv *userService) CredentialQR(ctx context.Context, id string) ([]byte, error) {
	if srv.qrcode == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "qrcode service is not configured")
	}

	user, err := srv.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindUser, id)
	}
	if strings.TrimSpace(user.Username) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("el usuario no tiene nombre de usuario")
	}

	png, err := srv.qrcode.GenerateCredentialQR(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate credential QR code")
	}

	return png, nil
}
