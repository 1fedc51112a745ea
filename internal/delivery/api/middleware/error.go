package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fitsaga/internal/delivery/api/response"
	deliverycontext "fitsaga/internal/delivery/context"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the echo HTTPErrorHandler: every error leaving a handler ends up here.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError writes domain errors with their own status and code, echo errors
// (routing, body limit, binding) with a code derived from the status, and anything
// else as a logged 500 without internals.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.Details(appErr))

	case errors.As(err, &httpErr):
		_ = response.Error(c, httpErr.Code, statusCode(httpErr.Code), httpErrorMessage(httpErr), nil)

	default:
		m.log(c).Error("Unhandled error",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}

// statusCode turns an HTTP status into an error code, e.g. 413 -> "REQUEST_ENTITY_TOO_LARGE".
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	switch msg := httpErr.Message.(type) {
	case string:
		return msg
	case error:
		return msg.Error()
	case nil:
		return http.StatusText(httpErr.Code)
	default:
		return fmt.Sprint(msg)
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
