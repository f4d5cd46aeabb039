package personnel

import (
	"context"
	"log/slog"

	"churchadmin/config"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// SourceParams holds dependencies for PersonnelSource, injected by Fx
type SourceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Repos  *repository.Repositories
	Logger *slog.Logger
}

// NewPersonnelSource selects the candidate source named by personnel.source.
func NewPersonnelSource(params SourceParams) (service.PersonnelSource, error) {
	cfg := params.Config.Personnel
	logger := params.Logger

	switch cfg.Source {
	case config.PersonnelSourceBackend, "":
		logger.Info("Using backend personnel source")

		return NewBackendSource(params.Repos.Members), nil

	case config.PersonnelSourceBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob personnel source")
		}

		bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open personnel bucket %s", cfg.BucketURL)
		}
		logger.Info("Using blob personnel source",
			slog.String("bucket", cfg.BucketURL),
			slog.String("key", cfg.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing personnel bucket")

				return errors.WithStack(bucket.Close())
			},
		})

		return NewBlobSource(bucket, cfg.Key, logger), nil

	default:
		return nil, errors.Errorf("unknown personnel source: %s", cfg.Source)
	}
}
