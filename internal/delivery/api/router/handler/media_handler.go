package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/domain/entity"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	thumbnailCacheControl   = "public, max-age=86400"
	placeholderCacheControl = "no-cache"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler serves exercise videos, thumbnails and their metadata
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// ListVideosRequest holds the metadata filters
type ListVideosRequest struct {
	Activity string `query:"activity"`
	Type     string `query:"type"`
	BodyPart string `query:"bodyPart"`
}

// SignedURLResponse is a time-limited video URL
type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

// ImportVideosResponse reports a metadata import
type ImportVideosResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// GetThumbnail handles GET /api/videos/thumbnail/*. It always answers 200 with an image.
func (h *MediaHandler) GetThumbnail(c echo.Context) error {
	thumb := h.mediaUC.ResolveThumbnail(c.Request().Context(), c.Param("*"))

	// A thumbnail uploaded later must replace the placeholder on the next request.
	cacheControl := thumbnailCacheControl
	if !thumb.Found {
		cacheControl = placeholderCacheControl
	}
	c.Response().Header().Set("Cache-Control", cacheControl)

	return c.Blob(http.StatusOK, thumb.ContentType, thumb.Data)
}

// ProxyVideo handles GET /api/videos/proxy?videoId=. Range requests are honored so players can seek.
func (h *MediaHandler) ProxyVideo(c echo.Context) error {
	videoID := c.QueryParam("videoId")
	if videoID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "videoId parameter is required")
	}

	video, err := h.mediaUC.ProxyVideo(c.Request().Context(), videoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, video.ContentType)
	http.ServeContent(c.Response(), c.Request(), path.Base(video.Path), time.Time{}, bytes.NewReader(video.Data))

	return nil
}

// GetSignedURL handles GET /api/videos/sas-url
func (h *MediaHandler) GetSignedURL(c echo.Context) error {
	blobName := c.QueryParam("blobName")
	if blobName == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "blobName is required")
	}

	out, err := h.mediaUC.SignedVideoURL(c.Request().Context(), blobName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SignedURLResponse{URL: out.URL, ExpiresIn: out.ExpiresIn})
}

// ListVideos handles GET /api/video-metadata
func (h *MediaHandler) ListVideos(c echo.Context) error {
	var req ListVideosRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	videos, err := h.mediaUC.ListVideos(c.Request().Context(), entity.VideoFilter{
		Activity: req.Activity,
		Type:     req.Type,
		BodyPart: req.BodyPart,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, toVideoResponse(v))
	}

	return response.Success(c, http.StatusOK, out)
}

// ImportVideos handles POST /api/video-metadata/import with a text/csv body or a multipart "file" field
func (h *MediaHandler) ImportVideos(c echo.Context) error {
	var body io.Reader = c.Request().Body
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "file is required")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "file could not be read")
		}
		defer file.Close()
		body = file
	}

	out, err := h.mediaUC.ImportVideos(c.Request().Context(), body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ImportVideosResponse{Imported: out.Imported, Skipped: out.Skipped})
}
