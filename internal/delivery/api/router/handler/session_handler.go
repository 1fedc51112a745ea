package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves /api/sessions
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ListSessionsRequest holds the query of a session listing
type ListSessionsRequest struct {
	From         string `query:"from"`
	To           string `query:"to"`
	InstructorID string `query:"instructorId"`
}

// DeleteSessionsRequest is the body of DELETE /api/sessions
type DeleteSessionsRequest struct {
	SessionIDs []string `json:"sessionIds"`
}

// DeleteSessionsResponse reports a session deletion
type DeleteSessionsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int    `json:"deletedCount"`
}

// ListSessions handles GET /api/sessions
func (h *SessionHandler) ListSessions(c echo.Context) error {
	var req ListSessionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	filter := repository.SessionFilter{InstructorID: req.InstructorID}
	var err error
	if filter.From, err = parseTimeParam(req.From); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "from must be a date or RFC 3339 time")
	}
	if filter.To, err = parseTimeParam(req.To); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "to must be a date or RFC 3339 time")
	}

	sessions, err := h.sessionUC.ListSessions(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteSessions handles DELETE /api/sessions
func (h *SessionHandler) DeleteSessions(c echo.Context) error {
	var req DeleteSessionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}

	out, err := h.sessionUC.DeleteSessions(c.Request().Context(), req.SessionIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteSessionsResponse{
		Success:      true,
		Message:      out.Message,
		DeletedCount: out.DeletedCount,
	})
}

// DeleteSession handles DELETE /api/sessions/:id
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	if err := h.sessionUC.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteSessionsResponse{
		Success:      true,
		Message:      "Session deleted successfully",
		DeletedCount: 1,
	})
}

// parseTimeParam accepts RFC 3339 times and plain dates. Empty values mean no bound.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
