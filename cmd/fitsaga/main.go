package main

import (
	"context"
	"log/slog"
	"os"

	"fitsaga/config"
	"fitsaga/internal/delivery"
	"fitsaga/internal/delivery/api"
	"fitsaga/internal/delivery/api/middleware"
	"fitsaga/internal/delivery/api/router/handler"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/infra/auth"
	"fitsaga/internal/infra/azure"
	"fitsaga/internal/infra/firebase"
	logs "fitsaga/internal/infra/log"
	"fitsaga/internal/infra/mail"
	"fitsaga/internal/infra/pdf"
	"fitsaga/internal/infra/persistence/firestore"
	"fitsaga/internal/infra/persistence/postgres"
	"fitsaga/internal/infra/pubsub"
	"fitsaga/internal/infra/qrcode"
	"fitsaga/internal/infra/storage"
	"fitsaga/internal/usecase/impl"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
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
		firebase.NewApp,
		firebase.NewFirestoreClient,
		firebase.NewAuthClient,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewPlanRepository,
			firestore.NewSessionRepository,
			firestore.NewBookingRepository,
			firestore.NewContractRepository,
			firestore.NewTutorialRepository,
			firestore.NewVideoMetadataRepository,
			newAuditRepository,
		),
	)
}

// newAuditRepository keeps audit records in Postgres when it is configured, otherwise in Firestore
func newAuditRepository(db *gorm.DB, client *fs.Client, logger *slog.Logger) repository.AuditRepository {
	if db != nil {
		logger.Info("Audit records stored in PostgreSQL")

		return postgres.NewAuditRepository(db)
	}

	return firestore.NewAuditRepository(client)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityProvider,
			pubsub.NewEventPublisher,
			storage.NewObjectStorage,
			mail.NewMailer,
			pdf.NewContractRenderer,
			qrcode.NewFromConfig,
			auth.NewSigningTokenService,
			azure.NewBlobStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewClientService,
			impl.NewInstructorService,
			impl.NewPlanService,
			impl.NewSessionService,
			impl.NewTutorialService,
			impl.NewContractService,
			impl.NewMediaService,
			impl.NewCreditService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewClientHandler,
			handler.NewInstructorHandler,
			handler.NewPlanHandler,
			handler.NewSessionHandler,
			handler.NewTutorialHandler,
			handler.NewContractHandler,
			handler.NewMediaHandler,
			handler.NewCronHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
