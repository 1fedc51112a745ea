package repository

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// VideoMetadataRepository defines the interface for video metadata persistence.
type VideoMetadataRepository interface {
	// ListVideos returns metadata matching the filter.
	ListVideos(ctx context.Context, filter entity.VideoFilter) ([]*entity.VideoMetadata, error)

	// CreateVideos persists new metadata records and returns how many were written.
	CreateVideos(ctx context.Context, videos []*entity.VideoMetadata) (int, error)
}
