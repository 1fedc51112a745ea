package firestore

import (
	"context"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

type videoMetadataRepository struct {
	client *fs.Client
}

// NewVideoMetadataRepository is the constructor for videoMetadataRepository.
func NewVideoMetadataRepository(client *fs.Client) repository.VideoMetadataRepository {
	return &videoMetadataRepository{
		client: client,
	}
}

func (repo *videoMetadataRepository) videos() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionVideoMetadata)
}

func (repo *videoMetadataRepository) ListVideos(ctx context.Context, filter entity.VideoFilter) ([]*entity.VideoMetadata, error) {
	query := repo.videos().Query
	if filter.Activity != "" {
		query = query.Where("activity", "==", filter.Activity)
	}
	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type)
	}
	if filter.BodyPart != "" {
		query = query.Where("bodyPart", "==", filter.BodyPart)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list video metadata")
	}

	videos := make([]*entity.VideoMetadata, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.VideoMetadataDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode video metadata %s", snap.Ref.ID)
		}
		videos = append(videos, &entity.VideoMetadata{
			VideoID:      doc.VideoID,
			Name:         doc.Name,
			Path:         doc.Path,
			Filename:     doc.Filename,
			Activity:     doc.Activity,
			Type:         doc.Type,
			BodyPart:     doc.BodyPart,
			ThumbnailURL: doc.ThumbnailURL,
			Extra:        doc.Extra,
			CreatedAt:    doc.CreatedAt,
		})
	}

	return videos, nil
}

// CreateVideos writes each record under a fresh document ID; a failed chunk leaves
// earlier chunks committed and the count reflects them.
func (repo *videoMetadataRepository) CreateVideos(ctx context.Context, videos []*entity.VideoMetadata) (int, error) {
	writes := make([]batchWrite, 0, len(videos))
	for _, video := range videos {
		ref := repo.videos().NewDoc()
		doc := &model.VideoMetadataDocument{
			VideoID:      video.VideoID,
			Name:         video.Name,
			Path:         video.Path,
			Filename:     video.Filename,
			Activity:     video.Activity,
			Type:         video.Type,
			BodyPart:     video.BodyPart,
			ThumbnailURL: video.ThumbnailURL,
			Extra:        video.Extra,
			CreatedAt:    video.CreatedAt,
		}
		writes = append(writes, func(batch *fs.WriteBatch) {
			batch.Create(ref, doc)
		})
	}

	committed, err := commitWrites(ctx, repo.client, writes)
	if err != nil {
		return committed, domainerrors.NewDatabaseExecuteError(err, "failed to import video metadata")
	}

	return committed, nil
}
