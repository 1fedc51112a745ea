// Package middleware holds echo middleware shared by the API and the worker.
package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "fitsaga/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// validRequestID accepts IDs from proxies and Pub/Sub pushes but rejects anything that would pollute logs.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestIDMiddleware tags each request with an ID and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process keeps a well-formed incoming X-Request-Id or mints a new one. The ID is echoed in
// the response, and both the ID and a logger scoped to it are attached to the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID.MatchString(requestID) {
			requestID = uuid.NewString()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.SetRequestID(c, requestID)

		scoped := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("route", req.Method+" "+c.Path()),
		)
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), scoped)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
