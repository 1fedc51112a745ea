package usecase

import (
	"context"
	"io"

	"fitsaga/internal/domain/entity"
)

// ImportVideosOutput reports a metadata import.
type ImportVideosOutput struct {
	Imported int
	Skipped  int
}

// Thumbnail is an image served by the thumbnail proxy.
type Thumbnail struct {
	Data        []byte
	ContentType string
	Found       bool // False when the transparent placeholder is served.
}

// Video is a video found by the video proxy.
type Video struct {
	Data        []byte
	ContentType string
	Container   string
	Path        string
}

// SignedURLOutput is a time-limited read URL for a video.
type SignedURLOutput struct {
	URL       string
	ExpiresIn int // seconds
}

// MediaUsecase defines access to exercise videos and their thumbnails.
type MediaUsecase interface {
	// ResolveThumbnail returns the thumbnail at path, or a transparent pixel when no container has it
	ResolveThumbnail(ctx context.Context, path string) *Thumbnail

	// ProxyVideo searches every video container for a video ID under its known folder layouts
	ProxyVideo(ctx context.Context, videoID string) (*Video, error)

	// SignedVideoURL returns a read-only URL for a blob in the video container
	SignedVideoURL(ctx context.Context, blobName string) (*SignedURLOutput, error)

	ListVideos(ctx context.Context, filter entity.VideoFilter) ([]*entity.VideoMetadata, error)

	// ImportVideos reads CSV rows with a header line and stores them as video metadata
	ImportVideos(ctx context.Context, csv io.Reader) (*ImportVideosOutput, error)
}
