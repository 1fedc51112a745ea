package service

import (
	"context"

	"fitsaga/internal/errors"
)

var (
	// ErrStorageExhausted is returned when every storage provider failed.
	ErrStorageExhausted = errors.New("all storage providers failed")
	// ErrObjectNotFound is returned when the key does not exist in a provider.
	ErrObjectNotFound = errors.New("object not found")
	// ErrUnknownStorageProvider is returned when loading from a provider that is not configured.
	ErrUnknownStorageProvider = errors.New("unknown storage provider")
)

// StoredObject tells which provider accepted an object and where it can be fetched.
type StoredObject struct {
	Provider string
	Key      string
	URL      string
}

// StorageProvider is one backend in the ranked storage chain.
type StorageProvider interface {
	// Name identifies the provider in stored records.
	Name() string

	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get reads the object back.
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectStorage stores documents through a ranked list of providers.
type ObjectStorage interface {
	// Store tries each provider in rank order and reports the first that succeeded.
	Store(ctx context.Context, key string, data []byte, contentType string) (*StoredObject, error)

	// Load reads an object from the named provider.
	Load(ctx context.Context, provider, key string) ([]byte, error)
}
