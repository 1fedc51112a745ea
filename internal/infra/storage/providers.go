// Package storage holds the ranked object storage chain used for contract PDFs.
package storage

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"fitsaga/config"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcp"
	"golang.org/x/oauth2/google"
)

// Provider names recorded on stored contracts
const (
	ProviderFirebase = "firebase"
	ProviderLocal    = "local"
)

const storageScope = "https://www.googleapis.com/auth/devstorage.read_write"

// Params holds dependencies for the storage chain, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage ranks Firebase Storage first when a bucket is configured and local disk last.
// A Firebase bucket that cannot be opened is logged and left out of the chain.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	var buckets []*blob.Bucket
	var providers []service.StorageProvider

	if fb := params.Config.Firebase; fb != nil && fb.StorageBucket != "" {
		bucket, err := openGCSBucket(params.Ctx, fb)
		if err != nil {
			params.Logger.Warn("Firebase Storage unavailable, using local storage only",
				slog.String("bucket", fb.StorageBucket),
				slog.Any("error", err),
			)
		} else {
			buckets = append(buckets, bucket)
			providers = append(providers, NewBucketProvider(ProviderFirebase, bucket, gcsPublicURL(fb.StorageBucket)))
		}
	}

	contracts := params.Config.Contracts
	local, err := fileblob.OpenBucket(contracts.LocalDir, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open local storage at %s", contracts.LocalDir)
	}
	buckets = append(buckets, local)
	providers = append(providers, NewBucketProvider(ProviderLocal, local, localPublicURL(contracts.PublicBaseURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			var closeErrs []error
			for _, bucket := range buckets {
				if err := bucket.Close(); err != nil {
					closeErrs = append(closeErrs, err)
				}
			}

			return errors.Join(closeErrs...)
		},
	})

	return NewRankedStorage(params.Logger, providers...), nil
}

func openGCSBucket(ctx context.Context, cfg *config.FirebaseConfig) (*blob.Bucket, error) {
	creds, err := gcsCredentials(ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	client, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCS HTTP client")
	}

	bucket, err := gcsblob.OpenBucket(ctx, client, cfg.StorageBucket, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.StorageBucket)
	}

	return bucket, nil
}

func gcsCredentials(ctx context.Context, credentialsPath string) (*google.Credentials, error) {
	if credentialsPath == "" {
		creds, err := gcp.DefaultCredentials(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load default credentials")
		}

		return creds, nil
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read credentials file")
	}

	creds, err := google.CredentialsFromJSON(ctx, data, storageScope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse credentials file")
	}

	return creds, nil
}

func gcsPublicURL(bucket string) func(string) string {
	return func(key string) string {
		return "https://storage.googleapis.com/" + bucket + "/" + key
	}
}

// localPublicURL serves files from the directory root, so keys map directly onto paths.
func localPublicURL(baseURL string) func(string) string {
	baseURL = strings.TrimRight(baseURL, "/")

	return func(key string) string {
		return baseURL + "/" + strings.TrimLeft(key, "/")
	}
}
