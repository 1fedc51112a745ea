package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitsaga/config"
	"fitsaga/internal/delivery/worker/handler"
	mockUC "fitsaga/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func newTestWorker(t *testing.T) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:   cfg,
		Logger:   logger,
		NotifyUC: mockUC.NewMockMemberNotificationUsecase(t),
	})

	return NewEcho(cfg, logger, push)
}

func TestWorkerRoutes(t *testing.T) {
	e := newTestWorker(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("push rejects a body that is not an envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"!!"}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("push only accepts POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestWorkerPort(t *testing.T) {
	assert.Equal(t, 8081, workerPort(&config.Config{}))
	assert.Equal(t, 9000, workerPort(&config.Config{Worker: &config.WorkerConfig{Port: 9000}}))
}
