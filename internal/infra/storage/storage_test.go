package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fitsaga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type failingProvider struct {
	name string
}

func (p *failingProvider) Name() string { return p.name }

func (p *failingProvider) Put(context.Context, string, []byte, string) (string, error) {
	return "", errors.New("bucket offline")
}

func (p *failingProvider) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("bucket offline")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemProvider(t *testing.T, name string) service.StorageProvider {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketProvider(name, bucket, localPublicURL("http://localhost:3000/"))
}

func TestRankedStorage_Store_FirstProviderWins(t *testing.T) {
	storage := NewRankedStorage(discardLogger(), newMemProvider(t, ProviderFirebase), newMemProvider(t, ProviderLocal))

	stored, err := storage.Store(context.Background(), "contracts/abc.pdf", []byte("%PDF"), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, ProviderFirebase, stored.Provider)
	assert.Equal(t, "contracts/abc.pdf", stored.Key)
	assert.Equal(t, "http://localhost:3000/contracts/abc.pdf", stored.URL)
}

func TestRankedStorage_Store_FallsBack(t *testing.T) {
	storage := NewRankedStorage(discardLogger(), &failingProvider{name: ProviderFirebase}, newMemProvider(t, ProviderLocal))

	stored, err := storage.Store(context.Background(), "contracts/abc.pdf", []byte("%PDF"), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, ProviderLocal, stored.Provider)

	data, err := storage.Load(context.Background(), ProviderLocal, "contracts/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestRankedStorage_Store_Exhausted(t *testing.T) {
	storage := NewRankedStorage(discardLogger(), &failingProvider{name: ProviderFirebase}, &failingProvider{name: ProviderLocal})

	_, err := storage.Store(context.Background(), "contracts/abc.pdf", []byte("%PDF"), "application/pdf")

	assert.ErrorIs(t, err, service.ErrStorageExhausted)
}

func TestRankedStorage_Load(t *testing.T) {
	storage := NewRankedStorage(discardLogger(), newMemProvider(t, ProviderLocal))

	_, err := storage.Load(context.Background(), "s3", "contracts/abc.pdf")
	assert.ErrorIs(t, err, service.ErrUnknownStorageProvider)

	_, err = storage.Load(context.Background(), ProviderLocal, "contracts/missing.pdf")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestPublicURLs(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/fitsaga.appspot.com/contracts/a.pdf", gcsPublicURL("fitsaga.appspot.com")("contracts/a.pdf"))
	assert.Equal(t, "https://portal.example.com/contracts/a.pdf", localPublicURL("https://portal.example.com/")("/contracts/a.pdf"))
}
