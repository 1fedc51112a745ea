package handler

import (
	"log/slog"
	"net/http"

	"fitsaga/internal/delivery/api/middleware"
	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TutorialHandlerParams holds dependencies for TutorialHandler, injected by Fx.
type TutorialHandlerParams struct {
	fx.In

	TutorialUC usecase.TutorialUsecase
	Logger     *slog.Logger
}

// TutorialHandler serves /api/tutorials
type TutorialHandler struct {
	tutorialUC usecase.TutorialUsecase
	logger     *slog.Logger
}

// NewTutorialHandler is the constructor for TutorialHandler
func NewTutorialHandler(params TutorialHandlerParams) *TutorialHandler {
	return &TutorialHandler{
		tutorialUC: params.TutorialUC,
		logger:     params.Logger,
	}
}

// TutorialRequest holds the writable fields of a tutorial
type TutorialRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Difficulty  string           `json:"difficulty"`
	Days        []TutorialDayDTO `json:"days" validate:"dive"`
}

func (r TutorialRequest) toInput() usecase.TutorialInput {
	return usecase.TutorialInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		Days:        toTutorialDays(r.Days),
	}
}

// ListTutorials handles GET /api/tutorials
func (h *TutorialHandler) ListTutorials(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	tutorials, err := h.tutorialUC.ListTutorials(c.Request().Context(), actor, c.QueryParam("authorId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*TutorialResponse, 0, len(tutorials))
	for _, t := range tutorials {
		out = append(out, toTutorialResponse(t))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetTutorial handles GET /api/tutorials/:id
func (h *TutorialHandler) GetTutorial(c echo.Context) error {
	tutorial, err := h.tutorialUC.GetTutorial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTutorialResponse(tutorial))
}

// CreateTutorial handles POST /api/tutorials
func (h *TutorialHandler) CreateTutorial(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req TutorialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tutorial input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tutorial, err := h.tutorialUC.CreateTutorial(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTutorialResponse(tutorial))
}

// UpdateTutorial handles PUT /api/tutorials/:id
func (h *TutorialHandler) UpdateTutorial(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req TutorialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tutorial input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tutorial, err := h.tutorialUC.UpdateTutorial(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTutorialResponse(tutorial))
}

// DeleteTutorial handles DELETE /api/tutorials/:id
func (h *TutorialHandler) DeleteTutorial(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	if err := h.tutorialUC.DeleteTutorial(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "Tutorial deleted successfully",
	})
}
