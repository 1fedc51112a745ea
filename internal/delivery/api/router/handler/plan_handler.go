package handler

import (
	"log/slog"
	"net/http"

	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler serves /api/subscription-plans
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// PlanRequest holds the writable fields of a plan.
// Required fields are checked by the use case so that credits may be zero for unlimited plans.
type PlanRequest struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	PlanCategory    string   `json:"planCategory"`
	Price           *float64 `json:"price"`
	Currency        string   `json:"currency"`
	Credits         *int     `json:"credits"`
	IntervalCredits int      `json:"intervalCredits"`
	Unlimited       bool     `json:"unlimited"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
}

func (r PlanRequest) toInput() usecase.PlanInput {
	return usecase.PlanInput{
		Name:            r.Name,
		Type:            r.Type,
		PlanCategory:    r.PlanCategory,
		Price:           r.Price,
		Currency:        r.Currency,
		Credits:         r.Credits,
		IntervalCredits: r.IntervalCredits,
		Unlimited:       r.Unlimited,
		Description:     r.Description,
		Features:        r.Features,
	}
}

// ListPlans handles GET /api/subscription-plans
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.planUC.ListPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetPlan handles GET /api/subscription-plans/:id
func (h *PlanHandler) GetPlan(c echo.Context) error {
	plan, err := h.planUC.GetPlan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponse(plan))
}

// CreatePlan handles POST /api/subscription-plans
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlanResponse(plan))
}

// UpdatePlan handles PUT /api/subscription-plans/:id
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlanResponse(plan))
}

// DeletePlan handles DELETE /api/subscription-plans/:id
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	if err := h.planUC.DeletePlan(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "Subscription plan deleted successfully",
	})
}
