package handler

import (
	"log/slog"
	"net/http"

	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CronHandlerParams holds dependencies for CronHandler, injected by Fx.
type CronHandlerParams struct {
	fx.In

	CreditUC usecase.CreditUsecase
	Logger   *slog.Logger
}

// CronHandler serves scheduled jobs triggered over HTTP
type CronHandler struct {
	creditUC usecase.CreditUsecase
	logger   *slog.Logger
}

// NewCronHandler is the constructor for CronHandler
func NewCronHandler(params CronHandlerParams) *CronHandler {
	return &CronHandler{
		creditUC: params.CreditUC,
		logger:   params.Logger,
	}
}

// CreditResetResponse summarizes a credit reset run
type CreditResetResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
}

// ResetCredits handles POST /api/cron/reset-credits
func (h *CronHandler) ResetCredits(c echo.Context) error {
	out, err := h.creditUC.ResetCredits(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CreditResetResponse{
		Success:   out.Success,
		Message:   out.Message,
		Processed: out.Processed,
		Skipped:   out.Skipped,
	})
}
