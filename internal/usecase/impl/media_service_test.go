package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/service"
	mockRepo "fitsaga/internal/mocks/repository"
	mockSvc "fitsaga/internal/mocks/service"
	"fitsaga/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixtures struct {
	service   usecase.MediaUsecase
	blobs     *mockSvc.MockBlobStore
	videoRepo *mockRepo.MockVideoMetadataRepository
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	blobs := mockSvc.NewMockBlobStore(t)
	videoRepo := mockRepo.NewMockVideoMetadataRepository(t)

	cfg := &config.Config{
		Azure: &config.AzureConfig{
			ContainerName:       "videos",
			ThumbnailContainers: []string{"thumbnails", "images"},
			VideoContainers:     []string{"sagafitvideos", "archive"},
			SASExpiry:           2 * time.Hour,
		},
	}

	svc := NewMediaService(MediaServiceParams{
		Config:    cfg,
		BlobStore: blobs,
		VideoRepo: videoRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	svc.(*mediaService).now = func() time.Time { return time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) }

	return mediaServiceFixtures{service: svc, blobs: blobs, videoRepo: videoRepo}
}

func TestThumbnailVariants(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "numeric segment", path: "/123/día 1/ex.jpg", want: []string{"123/día 1/ex.jpg", "123/ día 1/ex.jpg"}},
		{name: "literal percent kept", path: "9/50%25 off.jpg", want: []string{"9/50%25 off.jpg", "9/ 50%25 off.jpg"}},
		{name: "already spaced", path: "123/ día 1/ex.jpg", want: []string{"123/ día 1/ex.jpg"}},
		{name: "no numeric segment", path: "abs/ex.jpg", want: []string{"abs/ex.jpg"}},
		{name: "empty", path: "/", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thumbnailVariants(tt.path))
		})
	}
}

func TestVideoPathVariants(t *testing.T) {
	tests := []struct {
		name    string
		videoID string
		want    []string
	}{
		{
			name:    "user prefix and clip name",
			videoID: "10011090_18687781_2023_cw003.mp4",
			want: []string{
				"10011090_18687781_2023_cw003.mp4",
				"10011090/10011090_18687781_2023_cw003.mp4",
				"10011090/día 1/10011090_18687781_2023_cw003.mp4",
				"10011090/ día 1/10011090_18687781_2023_cw003.mp4",
				"10011090/videos/10011090_18687781_2023_cw003.mp4",
				"10011090/día 1/videos/10011090_18687781_2023_cw003.mp4",
				"10011090/ día 1/videos/10011090_18687781_2023_cw003.mp4",
				"10011090/2023_cw003.mp4",
				"10011090/día 1/2023_cw003.mp4",
				"10011090/ día 1/2023_cw003.mp4",
				"10011090/videos/2023_cw003.mp4",
				"10011090/día 1/videos/2023_cw003.mp4",
				"10011090/ día 1/videos/2023_cw003.mp4",
				"2023_cw003.mp4",
				"videos/10011090_18687781_2023_cw003.mp4",
			},
		},
		{
			name:    "bare clip name",
			videoID: "2023_cw003.mp4",
			want:    []string{"2023_cw003.mp4", "videos/2023_cw003.mp4"},
		},
		{
			name:    "user prefix only",
			videoID: "42_squat.mp4",
			want: []string{
				"42_squat.mp4",
				"42/42_squat.mp4",
				"42/día 1/42_squat.mp4",
				"42/ día 1/42_squat.mp4",
				"42/videos/42_squat.mp4",
				"42/día 1/videos/42_squat.mp4",
				"42/ día 1/videos/42_squat.mp4",
				"videos/42_squat.mp4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, videoPathVariants(tt.videoID))
		})
	}
}

func TestMediaService_ProxyVideo_FoundInLaterContainer(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	fx.blobs.EXPECT().Download(ctx, "sagafitvideos", mock.Anything).Return(nil, service.ErrBlobNotFound).Times(8)
	fx.blobs.EXPECT().Download(ctx, "archive", "42_squat.mp4").Return(nil, errors.New("timeout"))
	fx.blobs.EXPECT().Download(ctx, "archive", "42/42_squat.mp4").Return(nil, service.ErrBlobNotFound)
	fx.blobs.EXPECT().Download(ctx, "archive", "42/día 1/42_squat.mp4").
		Return(&service.Blob{Data: []byte("mp4")}, nil)

	video, err := fx.service.ProxyVideo(ctx, "42_squat.mp4")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp4"), video.Data)
	assert.Equal(t, "video/mp4", video.ContentType)
	assert.Equal(t, "archive", video.Container)
	assert.Equal(t, "42/día 1/42_squat.mp4", video.Path)
}

func TestMediaService_ProxyVideo_NotFoundListsSearch(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	fx.blobs.EXPECT().Download(ctx, mock.Anything, mock.Anything).Return(nil, service.ErrBlobNotFound).Times(4)

	_, err := fx.service.ProxyVideo(ctx, "2023_cw003.mp4")

	require.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
	var payloadErr domainerrors.PayloadError
	require.True(t, errors.As(err, &payloadErr))
	assert.Equal(t, map[string]any{
		"videoId":         "2023_cw003.mp4",
		"triedContainers": []string{"sagafitvideos", "archive"},
		"triedPaths":      []string{"2023_cw003.mp4", "videos/2023_cw003.mp4"},
	}, payloadErr.Payload())
}

func TestMediaService_ProxyVideo_Validation(t *testing.T) {
	fx := createTestMediaService(t)

	_, err := fx.service.ProxyVideo(context.Background(), " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	noBlobs := NewMediaService(MediaServiceParams{
		Config:    &config.Config{},
		VideoRepo: fx.videoRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	_, err = noBlobs.ProxyVideo(context.Background(), "42_squat.mp4")
	assert.ErrorIs(t, err, domainerrors.ErrMediaUnavailable)
}

func TestMediaService_ResolveThumbnail_SpacedVariantInSecondContainer(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	fx.blobs.EXPECT().Download(ctx, "thumbnails", "7/legs.jpg").Return(nil, service.ErrBlobNotFound)
	fx.blobs.EXPECT().Download(ctx, "images", "7/legs.jpg").Return(nil, service.ErrBlobNotFound)
	fx.blobs.EXPECT().Download(ctx, "thumbnails", "7/ legs.jpg").Return(nil, errors.New("timeout"))
	fx.blobs.EXPECT().Download(ctx, "images", "7/ legs.jpg").Return(&service.Blob{Data: []byte("jpg"), ContentType: "image/jpeg"}, nil)

	thumb := fx.service.ResolveThumbnail(ctx, "7/legs.jpg")

	assert.True(t, thumb.Found)
	assert.Equal(t, "image/jpeg", thumb.ContentType)
	assert.Equal(t, []byte("jpg"), thumb.Data)
}

func TestMediaService_ResolveThumbnail_Placeholder(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	fx.blobs.EXPECT().Download(ctx, mock.Anything, "missing.png").Return(nil, service.ErrBlobNotFound)

	thumb := fx.service.ResolveThumbnail(ctx, "missing.png")

	assert.False(t, thumb.Found)
	assert.Equal(t, "image/png", thumb.ContentType)
	assert.Equal(t, []byte("\x89PNG"), thumb.Data[:4])
}

func TestMediaService_ResolveThumbnail_WithoutBlobStore(t *testing.T) {
	svc := NewMediaService(MediaServiceParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	thumb := svc.ResolveThumbnail(context.Background(), "1/a.jpg")

	assert.False(t, thumb.Found)
	assert.NotEmpty(t, thumb.Data)
}

func TestMediaService_SignedVideoURL(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	fx.blobs.EXPECT().SignedURL("videos", "legs/squat.mp4", 2*time.Hour).Return("https://blob.test/videos/legs/squat.mp4?sig=x", nil)

	output, err := fx.service.SignedVideoURL(ctx, " legs/squat.mp4 ")

	require.NoError(t, err)
	assert.Equal(t, 7200, output.ExpiresIn)
	assert.Contains(t, output.URL, "sig=x")
}

func TestMediaService_SignedVideoURL_Validation(t *testing.T) {
	fx := createTestMediaService(t)

	_, err := fx.service.SignedVideoURL(context.Background(), "  ")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMediaService_SignedVideoURL_NotConfigured(t *testing.T) {
	svc := NewMediaService(MediaServiceParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := svc.SignedVideoURL(context.Background(), "a.mp4")

	assert.True(t, errors.Is(err, domainerrors.ErrMediaUnavailable))
}

func TestMediaService_ImportVideos_SkipsBadRows(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	csvData := "\ufeffVideoId,Name,FileName,Body_Part,Equipment\n" +
		"v1,Squat,squat.mp4,legs,barbell\n" +
		"v2,Lunge\n" +
		"v3,Bad\"quote,x.mp4,legs,\n" +
		"v4,Plank,plank.mp4,core,\n"

	var stored []*entity.VideoMetadata
	fx.videoRepo.EXPECT().CreateVideos(ctx, mock.Anything).
		Run(func(_ context.Context, videos []*entity.VideoMetadata) { stored = videos }).
		Return(2, nil)

	output, err := fx.service.ImportVideos(ctx, strings.NewReader(csvData))

	require.NoError(t, err)
	assert.Equal(t, usecase.ImportVideosOutput{Imported: 2, Skipped: 2}, *output)

	require.Len(t, stored, 2)
	assert.Equal(t, "v1", stored[0].VideoID)
	assert.Equal(t, "squat.mp4", stored[0].Path)
	assert.Equal(t, "legs", stored[0].BodyPart)
	assert.Equal(t, map[string]string{"equipment": "barbell"}, stored[0].Extra)
	assert.Nil(t, stored[1].Extra)
}

func TestMediaService_ImportVideos_Empty(t *testing.T) {
	fx := createTestMediaService(t)

	_, err := fx.service.ImportVideos(context.Background(), strings.NewReader(""))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
