package main

import (
	"context"

	"fitsaga/config"
	"fitsaga/internal/infra/azure"
	"fitsaga/internal/infra/firebase"
	logs "fitsaga/internal/infra/log"
	"fitsaga/internal/infra/persistence/firestore"
	"fitsaga/internal/infra/pubsub"
	"fitsaga/internal/usecase"
	"fitsaga/internal/usecase/impl"

	"go.uber.org/fx"
)

// usecases are the entry points a command can drive.
type usecases struct {
	fx.In

	Credits usecase.CreditUsecase
	Media   usecase.MediaUsecase
}

// withUsecases builds the dependency graph, runs fn against it and tears it down again.
func withUsecases(ctx context.Context, fn func(ctx context.Context, uc usecases) error) error {
	var resolved usecases

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			firebase.NewApp,
			firebase.NewFirestoreClient,
			firestore.NewUserRepository,
			firestore.NewPlanRepository,
			firestore.NewVideoMetadataRepository,
			pubsub.NewEventPublisher,
			azure.NewBlobStore,
			impl.NewCreditService,
			impl.NewMediaService,
		),
		fx.Invoke(func(uc usecases) {
			resolved = uc
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	return fn(ctx, resolved)
}
