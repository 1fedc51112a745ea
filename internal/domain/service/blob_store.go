package service

import (
	"context"
	"time"

	"fitsaga/internal/errors"
)

// ErrBlobNotFound is returned when a blob does not exist in the container.
var ErrBlobNotFound = errors.New("blob not found")

// Blob is a downloaded object.
type Blob struct {
	Data        []byte
	ContentType string
}

// BlobStore accesses the video and thumbnail containers.
type BlobStore interface {
	// SignedURL returns a read-only SAS URL valid for expiry.
	SignedURL(container, blobName string, expiry time.Duration) (string, error)

	// Download fetches a blob.
	Download(ctx context.Context, container, blobName string) (*Blob, error)

	// Upload writes a blob.
	Upload(ctx context.Context, container, blobName string, data []byte, contentType string) error
}
