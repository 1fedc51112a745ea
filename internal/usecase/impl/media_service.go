package impl

import (
	"context"
	"encoding/base64"
	"encoding/csv"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"

	"go.uber.org/fx"
)

// transparentPixel is a 1x1 transparent PNG.
var transparentPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

// Video IDs look like "{userId}_{otherIds}_{year}_cw{nnn}.mp4" or just "{year}_cw{nnn}.mp4".
var (
	leadingUserID = regexp.MustCompile(`^(\d+)_`)
	clipFilename  = regexp.MustCompile(`(?i)(?:^|_)(\d{4}_cw\d{3}\.mp4)$`)
)

// userVideoFolders are the folders under a user prefix that hold uploaded videos.
var userVideoFolders = []string{"", "día 1/", " día 1/", "videos/", "día 1/videos/", " día 1/videos/"}

// leadingIDSegment matches a numeric first segment followed by a name that does not start with a space.
var leadingIDSegment = regexp.MustCompile(`^(\d+)/([^ /])`)

// videoColumns maps normalized CSV headers to metadata fields.
var videoColumns = map[string]string{
	"videoid":      "videoId",
	"video_id":     "videoId",
	"id":           "videoId",
	"name":         "name",
	"path":         "path",
	"filename":     "filename",
	"file_name":    "filename",
	"activity":     "activity",
	"type":         "type",
	"bodypart":     "bodyPart",
	"body_part":    "bodyPart",
	"thumbnailurl": "thumbnailUrl",
	"thumbnail":    "thumbnailUrl",
}

// MediaServiceParams holds dependencies for the media service
type MediaServiceParams struct {
	fx.In

	Config    *config.Config
	BlobStore service.BlobStore // nil when Azure is not configured
	VideoRepo repository.VideoMetadataRepository
	Logger    *slog.Logger
}

type mediaService struct {
	blobs               service.BlobStore
	videoRepo           repository.VideoMetadataRepository
	videoContainer      string
	videoContainers     []string
	thumbnailContainers []string
	sasExpiry           time.Duration
	logger              *slog.Logger
	now                 func() time.Time
}

// NewMediaService creates the video and thumbnail use case
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	srv := &mediaService{
		blobs:     params.BlobStore,
		videoRepo: params.VideoRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
	if azure := params.Config.Azure; azure != nil {
		srv.videoContainer = azure.ContainerName
		srv.thumbnailContainers = azure.ThumbnailContainers
		srv.videoContainers = azure.VideoContainers
		srv.sasExpiry = azure.SASExpiry
	}
	if len(srv.thumbnailContainers) == 0 {
		srv.thumbnailContainers = config.DefaultThumbnailContainers
	}
	if len(srv.videoContainers) == 0 {
		srv.videoContainers = config.DefaultVideoContainers
	}

	return srv
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveThumbnail tries each path variant against each container in order and
// serves the first hit. Every miss ends in the transparent placeholder.
func (srv *mediaService) ResolveThumbnail(ctx context.Context, path string) *usecase.Thumbnail {
	if srv.blobs == nil {
		return placeholderThumbnail()
	}

	for _, variant := range thumbnailVariants(path) {
		for _, container := range srv.thumbnailContainers {
			blob, err := srv.blobs.Download(ctx, container, variant)
			if err != nil {
				if !errors.Is(err, service.ErrBlobNotFound) {
					srv.log(ctx).Debug("Thumbnail download failed",
						slog.String("container", container),
						slog.String("path", variant),
						slog.Any("error", err),
					)
				}

				continue
			}

			contentType := blob.ContentType
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			return &usecase.Thumbnail{Data: blob.Data, ContentType: contentType, Found: true}
		}
	}

	srv.log(ctx).Info("Thumbnail not found, serving placeholder", slog.String("path", path))

	return placeholderThumbnail()
}

func placeholderThumbnail() *usecase.Thumbnail {
	return &usecase.Thumbnail{Data: transparentPixel, ContentType: "image/png"}
}

// thumbnailVariants returns the path, then the same path with a space after a leading
// numeric segment, e.g. "123/día 1/x.jpg" also tries "123/ día 1/x.jpg".
// The router has already decoded the path once.
func thumbnailVariants(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}

	variants := []string{path}
	if spaced := leadingIDSegment.ReplaceAllString(path, "$1/ $2"); spaced != path {
		variants = append(variants, spaced)
	}

	return variants
}

// ProxyVideo tries every container with every path variant of the video ID and returns the
// first blob found. A miss reports the containers and paths that were searched.
func (srv *mediaService) ProxyVideo(ctx context.Context, videoID string) (*usecase.Video, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("videoId is required")
	}
	if srv.blobs == nil {
		return nil, domainerrors.ErrMediaUnavailable
	}

	paths := videoPathVariants(videoID)
	for _, container := range srv.videoContainers {
		for _, path := range paths {
			blob, err := srv.blobs.Download(ctx, container, path)
			if err != nil {
				if !errors.Is(err, service.ErrBlobNotFound) {
					srv.log(ctx).Debug("Video download failed",
						slog.String("container", container),
						slog.String("path", path),
						slog.Any("error", err),
					)
				}

				continue
			}

			contentType := blob.ContentType
			if contentType == "" {
				contentType = "video/mp4"
			}
			srv.log(ctx).Debug("Video found", slog.String("container", container), slog.String("path", path))

			return &usecase.Video{Data: blob.Data, ContentType: contentType, Container: container, Path: path}, nil
		}
	}

	srv.log(ctx).Warn("Video not found in any container",
		slog.String("video_id", videoID),
		slog.Int("paths", len(paths)),
	)

	return nil, domainerrors.WithPayload(domainerrors.ErrVideoNotFound, map[string]any{
		"videoId":         videoID,
		"triedContainers": srv.videoContainers,
		"triedPaths":      paths,
	})
}

// videoPathVariants lists where an uploaded video may live: the container root, the user's
// folders for the full ID and for its "{year}_cw{nnn}.mp4" clip name, then the shared videos folder.
func videoPathVariants(videoID string) []string {
	var userID, clip string
	if m := leadingUserID.FindStringSubmatch(videoID); m != nil {
		userID = m[1]
	}
	if m := clipFilename.FindStringSubmatch(videoID); m != nil && m[1] != videoID {
		clip = m[1]
	}

	paths := []string{videoID}
	if userID != "" {
		for _, folder := range userVideoFolders {
			paths = append(paths, userID+"/"+folder+videoID)
		}
		if clip != "" {
			for _, folder := range userVideoFolders {
				paths = append(paths, userID+"/"+folder+clip)
			}
		}
	}
	if clip != "" {
		paths = append(paths, clip)
	}
	paths = append(paths, "videos/"+videoID)

	seen := make(map[string]struct{}, len(paths))
	unique := paths[:0]
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		unique = append(unique, path)
	}

	return unique
}

// SignedVideoURL issues a read-only SAS URL for a video blob.
func (srv *mediaService) SignedVideoURL(ctx context.Context, blobName string) (*usecase.SignedURLOutput, error) {
	blobName = strings.TrimSpace(blobName)
	if blobName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("blobName is required")
	}
	if srv.blobs == nil || srv.videoContainer == "" {
		return nil, domainerrors.ErrMediaUnavailable
	}

	signed, err := srv.blobs.SignedURL(srv.videoContainer, blobName, srv.sasExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign video url")
	}

	srv.log(ctx).Debug("Issued video SAS url", slog.String("blob", blobName))

	return &usecase.SignedURLOutput{URL: signed, ExpiresIn: int(srv.sasExpiry.Seconds())}, nil
}

func (srv *mediaService) ListVideos(ctx context.Context, filter entity.VideoFilter) ([]*entity.VideoMetadata, error) {
	videos, err := srv.videoRepo.ListVideos(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list video metadata")
	}

	return videos, nil
}

// ImportVideos stores one metadata record per CSV row. Rows whose column count differs
// from the header are skipped.
func (srv *mediaService) ImportVideos(ctx context.Context, r io.Reader) (*usecase.ImportVideosOutput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("csv is empty")
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))
	}

	now := srv.now().UTC()
	var videos []*entity.VideoMetadata
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, errors.Wrap(err, "failed to read csv")
			}
			srv.log(ctx).Warn("Skipping malformed csv row", slog.Int("line", parseErr.Line), slog.Any("error", err))
			skipped++

			continue
		}
		if len(record) != len(header) {
			skipped++

			continue
		}

		videos = append(videos, videoFromRecord(header, record, now))
	}

	imported, err := srv.videoRepo.CreateVideos(ctx, videos)
	if err != nil {
		srv.log(ctx).Error("Video import stopped", slog.Int("imported", imported), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store video metadata")
	}

	return &usecase.ImportVideosOutput{Imported: imported, Skipped: skipped}, nil
}

func videoFromRecord(header, record []string, now time.Time) *entity.VideoMetadata {
	video := &entity.VideoMetadata{CreatedAt: now}
	for i, column := range header {
		value := strings.TrimSpace(record[i])

		switch videoColumns[column] {
		case "videoId":
			video.VideoID = value
		case "name":
			video.Name = value
		case "path":
			video.Path = value
		case "filename":
			video.Filename = value
		case "activity":
			video.Activity = value
		case "type":
			video.Type = value
		case "bodyPart":
			video.BodyPart = value
		case "thumbnailUrl":
			video.ThumbnailURL = value
		default:
			if column == "" || value == "" {
				continue
			}
			if video.Extra == nil {
				video.Extra = make(map[string]string)
			}
			video.Extra[column] = value
		}
	}

	if video.Path == "" {
		video.Path = video.Filename
	}

	return video
}
