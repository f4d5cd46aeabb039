package impl

import (
	"context"
	"log/slog"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
)

// managedCreate describes the creation of an entity that may own a login.
type managedCreate struct {
	kind     string
	role     entity.Role
	entityID string
	creds    entity.Credentials

	create func(ctx context.Context) error
	remove func(ctx context.Context) error
	// link stores the backend-minted user id on the entity. Nil when the
	// entity does not reference its login.
	link func(ctx context.Context, userID string) error
}

// createManaged writes the entity and, when complete credentials were given,
// its login. A failure after the entity write deletes what was written.
// It returns the created login, or nil.
func (b *base) createManaged(ctx context.Context, mc managedCreate) (*entity.User, error) {
	mc.creds = mc.creds.Normalize()
	provision, err := validateNewCredentials(mc.creds)
	if err != nil {
		return nil, err
	}

	if !provision {
		if err := mc.create(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", mc.kind)
		}
		b.publish(ctx, service.EventCreated, mc.kind, mc.entityID)

		return nil, nil
	}

	if err := b.accounts.ensureUsernameAvailable(ctx, mc.creds.Username, ""); err != nil {
		return nil, err
	}

	account, err := b.accounts.newAccount(mc.creds, mc.role, mc.entityID)
	if err != nil {
		return nil, err
	}

	flow := newSaga(b.log(ctx)).
		step("create "+mc.kind, mc.create, mc.remove).
		step("create user",
			func(ctx context.Context) error { return b.accounts.create(ctx, account) },
			func(ctx context.Context) error { return b.repos.Users.Delete(ctx, account.ID) })
	if mc.link != nil {
		flow.step("link "+mc.role.String(),
			func(ctx context.Context) error { return mc.link(ctx, account.ID) },
			nil)
	}

	if err := flow.execute(ctx); err != nil {
		b.log(ctx).Error("Failed to create entity with account",
			slog.String("entity", mc.kind),
			slog.String("id", mc.entityID),
			slog.Any("error", err))

		return nil, err
	}

	b.log(ctx).Info("Created entity with account",
		slog.String("entity", mc.kind),
		slog.String("id", mc.entityID),
		slog.String("userID", account.ID))

	b.accounts.provisionAuth(ctx, account, mc.creds.Password)
	b.publish(ctx, service.EventCreated, mc.kind, mc.entityID)
	b.publish(ctx, service.EventCreated, kindUser, account.ID)

	return account, nil
}

// managedUpdate describes the full replacement of an entity that may own a login.
type managedUpdate struct {
	kind     string
	role     entity.Role
	entityID string
	creds    entity.Credentials

	// update replaces the entity. userID is set only when this edit created
	// the entity's first login; otherwise the stored reference is kept.
	update func(ctx context.Context, userID string) error
}

// updateManaged replaces the entity and then its login. With no login on
// record and complete credentials, a login is created before the entity is
// replaced and is deleted again if the replacement fails.
func (b *base) updateManaged(ctx context.Context, mu managedUpdate) error {
	mu.creds = mu.creds.Normalize()
	existing, err := b.accounts.linkedStrict(ctx, mu.entityID, mu.role)
	if err != nil {
		return err
	}

	if err := validateEditCredentials(mu.creds, existing != nil); err != nil {
		return err
	}

	switch {
	case existing == nil && mu.creds.IsComplete():
		return b.attachAccount(ctx, mu)

	case existing != nil && !mu.creds.IsEmpty():
		if err := b.accounts.ensureUsernameAvailable(ctx, mu.creds.Username, existing.ID); err != nil {
			return err
		}
		if err := mu.update(ctx, ""); err != nil {
			return errors.Wrapf(err, "failed to update %s", mu.kind)
		}
		if err := b.accounts.replace(ctx, existing, mu.creds); err != nil {
			return err
		}
		b.publish(ctx, service.EventUpdated, mu.kind, mu.entityID)
		b.publish(ctx, service.EventUpdated, kindUser, existing.ID)

		return nil

	default:
		if err := mu.update(ctx, ""); err != nil {
			return errors.Wrapf(err, "failed to update %s", mu.kind)
		}
		b.publish(ctx, service.EventUpdated, mu.kind, mu.entityID)

		return nil
	}
}

func (b *base) attachAccount(ctx context.Context, mu managedUpdate) error {
	if err := b.accounts.ensureUsernameAvailable(ctx, mu.creds.Username, ""); err != nil {
		return err
	}

	account, err := b.accounts.newAccount(mu.creds, mu.role, mu.entityID)
	if err != nil {
		return err
	}

	err = newSaga(b.log(ctx)).
		step("create user",
			func(ctx context.Context) error { return b.accounts.create(ctx, account) },
			func(ctx context.Context) error { return b.repos.Users.Delete(ctx, account.ID) }).
		step("update "+mu.kind,
			func(ctx context.Context) error { return mu.update(ctx, account.ID) },
			nil).
		execute(ctx)
	if err != nil {
		return err
	}

	b.accounts.provisionAuth(ctx, account, mu.creds.Password)
	b.publish(ctx, service.EventUpdated, mu.kind, mu.entityID)
	b.publish(ctx, service.EventCreated, kindUser, account.ID)

	return nil
}

// deleteManaged removes the entity and then, best-effort, its login.
func (b *base) deleteManaged(ctx context.Context, kind, id string, role entity.Role, remove func(ctx context.Context, id string) error) error {
	if err := remove(ctx, id); err != nil {
		return notFound(err, kind, id)
	}
	b.publish(ctx, service.EventDeleted, kind, id)

	if account := b.accounts.linked(ctx, id, role); account != nil {
		if err := b.repos.Users.Delete(ctx, account.ID); err != nil {
			b.log(ctx).Warn("Failed to delete linked account",
				slog.String("entity", kind),
				slog.String("id", id),
				slog.String("userID", account.ID),
				slog.Any("error", err))
		} else {
			b.publish(ctx, service.EventDeleted, kindUser, account.ID)
		}
	}

	return nil
}
