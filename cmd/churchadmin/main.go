package main

import (
	"context"
	"log/slog"
	"os"

	"churchadmin/config"
	"churchadmin/internal/delivery"
	"churchadmin/internal/delivery/api"
	"churchadmin/internal/delivery/api/router/handler"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/errors"
	"churchadmin/internal/infra/auth"
	logs "churchadmin/internal/infra/log"
	"churchadmin/internal/infra/persistence/memory"
	"churchadmin/internal/infra/persistence/postgres"
	"churchadmin/internal/infra/personnel"
	"churchadmin/internal/infra/pubsub"
	"churchadmin/internal/infra/qrcode"
	"churchadmin/internal/infra/toast"
	"churchadmin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

// newRepositories opens the store selected by storage.driver.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*repository.Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		return memory.NewRepositories(), nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}

		return postgres.NewRepositories(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewAuthProvider,
			qrcode.NewQRCodeService,
			personnel.NewPersonnelSource,
			toast.NewNotifier,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUnionService,
			impl.NewAssociationService,
			impl.NewZoneService,
			impl.NewDistrictService,
			impl.NewChurchService,
			impl.NewSmallGroupService,
			impl.NewMemberService,
			impl.NewMissionaryPairService,
			impl.NewWeeklyReportService,
			impl.NewUserService,
			impl.NewPersonnelService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUnionHandler,
			handler.NewAssociationHandler,
			handler.NewZoneHandler,
			handler.NewDistrictHandler,
			handler.NewChurchHandler,
			handler.NewSmallGroupHandler,
			handler.NewMemberHandler,
			handler.NewMissionaryPairHandler,
			handler.NewWeeklyReportHandler,
			handler.NewUserHandler,
			handler.NewPersonnelHandler,
			handler.NewToastHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
