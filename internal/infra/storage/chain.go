package storage

import (
	"context"
	"log/slog"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
)

// rankedStorage writes to the first provider that accepts an object.
type rankedStorage struct {
	providers []service.StorageProvider
	logger    *slog.Logger
}

// NewRankedStorage builds the chain. Providers are tried in the given order.
func NewRankedStorage(logger *slog.Logger, providers ...service.StorageProvider) service.ObjectStorage {
	return &rankedStorage{
		providers: providers,
		logger:    logger,
	}
}

func (s *rankedStorage) Store(ctx context.Context, key string, data []byte, contentType string) (*service.StoredObject, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var failures []error
	for _, provider := range s.providers {
		url, err := provider.Put(ctx, key, data, contentType)
		if err != nil {
			logger.Warn("Storage provider failed, trying next",
				slog.String("provider", provider.Name()),
				slog.String("key", key),
				slog.Any("error", err),
			)
			failures = append(failures, err)

			continue
		}

		return &service.StoredObject{
			Provider: provider.Name(),
			Key:      key,
			URL:      url,
		}, nil
	}

	return nil, errors.Join(append([]error{service.ErrStorageExhausted}, failures...)...)
}

func (s *rankedStorage) Load(ctx context.Context, provider, key string) ([]byte, error) {
	for _, candidate := range s.providers {
		if candidate.Name() == provider {
			return candidate.Get(ctx, key)
		}
	}

	return nil, errors.Wrapf(service.ErrUnknownStorageProvider, "provider %q", provider)
}
