// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "churchadmin/internal/delivery/context"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Entity kinds used in submission keys, events and log fields.
const (
	kindUnion          = "union"
	kindAssociation    = "association"
	kindZone           = "zone"
	kindDistrict       = "district"
	kindChurch         = "church"
	kindSmallGroup     = "small_group"
	kindMember         = "member"
	kindMissionaryPair = "missionary_pair"
	kindWeeklyReport   = "weekly_report"
	kindUser           = "user"
)

// lookupConcurrency bounds the fan-out of per-row lookups in list views.
const lookupConcurrency = 8

// ServiceParams holds dependencies shared by the use cases, injected by Fx.
type ServiceParams struct {
	fx.In

	Repos        *repository.Repositories
	Hasher       service.PasswordHasher
	AuthProvider service.AuthProvider
	Publisher    service.EventPublisher
	Personnel    service.PersonnelSource
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

// base carries what every use case needs: repositories, the account
// provisioner, a submission guard and best-effort event publication.
type base struct {
	repos     *repository.Repositories
	accounts  *accountProvisioner
	guard     *submissionGuard
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newBase(params ServiceParams) base {
	return base{
		repos: params.Repos,
		accounts: &accountProvisioner{
			users:  params.Repos.Users,
			hasher: params.Hasher,
			auth:   params.AuthProvider,
			logger: params.Logger,
		},
		guard:     newSubmissionGuard(),
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (b *base) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, b.logger)
}

// publish announces a committed change. Failures are logged only.
func (b *base) publish(ctx context.Context, eventType, kind, id string) {
	if b.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntityType: kind,
		EntityID:   id,
		OccurredAt: b.now().UTC(),
	}
	if err := b.publisher.PublishDomainEvent(ctx, event); err != nil {
		b.log(ctx).Warn("Failed to publish domain event",
			slog.String("type", eventType),
			slog.String("entity", kind),
			slog.String("id", id),
			slog.Any("error", err))
	}
}

// settle runs fn while holding the submission slot for key.
func (b *base) settle(key string, fn func() error) error {
	release, err := b.guard.acquire(key)
	if err != nil {
		return err
	}
	defer release()

	return fn()
}

// notFound translates a repository miss into the user-facing not found error.
func notFound(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNotFound.WithDetails(kind + " " + id)
	}

	return errors.Wrapf(err, "failed to load %s %s", kind, id)
}

// requireParent checks that the parent referenced by a form exists.
func requireParent[T any](ctx context.Context, find func(context.Context, string) (T, error), kind, id string) error {
	if _, err := find(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrValidationFailed.WithDetails(kind + " " + id + " no existe")
		}

		return errors.Wrapf(err, "failed to load %s %s", kind, id)
	}

	return nil
}

// loadAll runs independent reads concurrently and returns the first error.
func loadAll(ctx context.Context, loaders ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		g.Go(func() error { return load(gctx) })
	}

	return errors.WithStack(g.Wait())
}
