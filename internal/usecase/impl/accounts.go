package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "churchadmin/internal/delivery/context"
	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	"golang.org/x/sync/errgroup"
)

// accountProvisioner creates, looks up and replaces the login linked to a
// managerial entity.
type accountProvisioner struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	auth   service.AuthProvider
	logger *slog.Logger
}

func (p *accountProvisioner) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// ensureUsernameAvailable rejects a username held by any user other than ownerID.
func (p *accountProvisioner) ensureUsernameAvailable(ctx context.Context, username, ownerID string) error {
	existing, err := p.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if existing.ID == ownerID {
		return nil
	}

	return domainerrors.ErrDuplicateUsername.WithDetails(username)
}

// newAccount builds an unsaved active user for entityID.
func (p *accountProvisioner) newAccount(creds entity.Credentials, role entity.Role, entityID string) (*entity.User, error) {
	hash, err := p.hasher.Hash(creds.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return &entity.User{
		Username:        strings.TrimSpace(creds.Username),
		PasswordHash:    hash,
		Email:           strings.TrimSpace(creds.Email),
		Name:            strings.TrimSpace(creds.Name),
		Role:            role,
		RelatedEntityID: entityID,
		IsActive:        true,
	}, nil
}

// create stores a new account. A unique violation from either driver is
// reported as a taken username.
func (p *accountProvisioner) create(ctx context.Context, user *entity.User) error {
	if err := p.users.Create(ctx, user); err != nil {
		return usernameConflict(err, user.Username)
	}

	return nil
}

func usernameConflict(err error, username string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return domainerrors.ErrDuplicateUsername.WithDetails(username)
	}

	return err
}

// linked returns the login managing entityID in role, or nil. Lookup failures
// are logged and treated as "no account".
func (p *accountProvisioner) linked(ctx context.Context, entityID string, role entity.Role) *entity.User {
	user, err := p.users.FindByRelatedEntityAndRole(ctx, entityID, role)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			p.log(ctx).Warn("Failed to load linked account",
				slog.String("entityID", entityID),
				slog.String("role", role.String()),
				slog.Any("error", err))
		}

		return nil
	}

	return user
}

// linkedStrict is linked for write paths: only a miss means "no account".
func (p *accountProvisioner) linkedStrict(ctx context.Context, entityID string, role entity.Role) (*entity.User, error) {
	user, err := p.users.FindByRelatedEntityAndRole(ctx, entityID, role)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load linked account")
	}

	return user, nil
}

// linkedMany looks up the login of every id concurrently. Misses and
// failures yield an empty account.
func (p *accountProvisioner) linkedMany(ctx context.Context, ids []string, role entity.Role) map[string]entity.LinkedAccount {
	accounts := make([]entity.LinkedAccount, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			accounts[i] = entity.AccountOf(p.linked(gctx, id, role))

			return nil
		})
	}
	_ = g.Wait()

	byID := make(map[string]entity.LinkedAccount, len(ids))
	for i, id := range ids {
		byID[id] = accounts[i]
	}

	return byID
}

// replace overwrites user with the submitted credentials. A blank password
// keeps the stored hash.
func (p *accountProvisioner) replace(ctx context.Context, user *entity.User, creds entity.Credentials) error {
	updated := *user
	updated.Username = strings.TrimSpace(creds.Username)
	updated.Email = strings.TrimSpace(creds.Email)
	updated.Name = strings.TrimSpace(creds.Name)
	if creds.Password != "" {
		hash, err := p.hasher.Hash(creds.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		updated.PasswordHash = hash
	}

	if err := p.users.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return usernameConflict(err, updated.Username)
		}

		return errors.Wrap(err, "failed to update linked account")
	}
	*user = updated

	return nil
}

// provisionAuth creates the identity-provider account. The local user is the
// source of truth, so failures are logged only.
func (p *accountProvisioner) provisionAuth(ctx context.Context, user *entity.User, password string) {
	if p.auth == nil {
		return
	}

	metadata := service.AuthAccountMetadata{
		UserID:          user.ID,
		Username:        user.Username,
		DisplayName:     user.Name,
		Role:            user.Role.String(),
		RelatedEntityID: user.RelatedEntityID,
	}
	if err := p.auth.CreateAuthUser(ctx, user.Email, password, metadata); err != nil {
		p.log(ctx).Warn("Failed to create auth provider account",
			slog.String("userID", user.ID),
			slog.String("email", user.Email),
			slog.Any("error", err))
	}
}
