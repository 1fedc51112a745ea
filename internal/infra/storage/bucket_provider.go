package storage

import (
	"context"

	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// bucketProvider adapts a gocloud bucket to the storage chain.
type bucketProvider struct {
	name   string
	bucket *blob.Bucket
	urlFor func(key string) string
}

// NewBucketProvider wraps an opened bucket. urlFor maps an object key to its public URL.
func NewBucketProvider(name string, bucket *blob.Bucket, urlFor func(key string) string) service.StorageProvider {
	return &bucketProvider{
		name:   name,
		bucket: bucket,
		urlFor: urlFor,
	}
}

func (p *bucketProvider) Name() string {
	return p.name
}

func (p *bucketProvider) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	err := p.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "%s: failed to write %s", p.name, key)
	}

	return p.urlFor(key), nil
}

func (p *bucketProvider) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := p.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Join(service.ErrObjectNotFound, err)
		}

		return nil, errors.Wrapf(err, "%s: failed to read %s", p.name, key)
	}

	return data, nil
}
