package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/constants"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/errors"

	"github.com/labstack/echo/v4"
)

// quietPaths are never logged on success.
var quietPaths = map[string]bool{
	"/health": true,
}

// LoggerMiddleware writes one access line per request. Failed requests are always
// logged; successful ones only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = errorStatus(err)
		}

		if status < 400 && (!m.debug || quietPaths[c.Path()]) {
			return err
		}

		m.access(c, status, time.Since(start), err)

		return err
	}
}

// errorStatus predicts the status the error handler will write for err.
func errorStatus(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func (m *LoggerMiddleware) access(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		attrs = append(attrs, slog.String("uid", identity.UID), slog.String("role", identity.Role.String()))
	} else if adminID := req.Header.Get(constants.HeaderAdminID); adminID != "" {
		attrs = append(attrs, slog.String("admin_id", adminID))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}
