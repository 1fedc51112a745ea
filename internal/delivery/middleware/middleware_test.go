package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	domainerrors "fitsaga/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/users", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/api/clients/:id", func(c echo.Context) error {
		return domainerrors.ErrClientNotFound
	})

	return e
}

func serve(e *echo.Echo, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("keeps a well-formed incoming id", func(t *testing.T) {
		e := newTestEcho(&bytes.Buffer{}, false)

		rec := serve(e, "/api/users", "pubsub-msg-42")

		assert.Equal(t, "pubsub-msg-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "pubsub-msg-42", rec.Body.String())
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		e := newTestEcho(&bytes.Buffer{}, false)

		rec := serve(e, "/api/users", "bad id\twith spaces")

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, got, 36)
		assert.Equal(t, got, rec.Body.String())
	})

	t.Run("mints an id when none is sent", func(t *testing.T) {
		e := newTestEcho(&bytes.Buffer{}, false)

		rec := serve(e, "/api/users", "")

		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("successful requests are silent outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		serve(e, "/api/users", "")

		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged outside debug with the domain status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		serve(e, "/api/clients/c9", "req-1")

		line := buf.String()
		require.NotEmpty(t, line)
		assert.Contains(t, line, `"level":"WARN"`)
		assert.Contains(t, line, `"status":404`)
		assert.Contains(t, line, `"request_id":"req-1"`)
		assert.Contains(t, line, `"route":"GET /api/clients/:id"`)
	})

	t.Run("debug logs successes but not health checks", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		serve(e, "/health", "")
		serve(e, "/api/users", "")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], `"path":"/api/users"`)
		assert.Contains(t, lines[0], `"level":"INFO"`)
	})
}
