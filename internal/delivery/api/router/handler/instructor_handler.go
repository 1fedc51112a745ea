package handler

import (
	"log/slog"
	"net/http"

	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InstructorHandlerParams holds dependencies for InstructorHandler, injected by Fx.
type InstructorHandlerParams struct {
	fx.In

	InstructorUC usecase.InstructorUsecase
	Logger       *slog.Logger
}

// InstructorHandler serves /api/instructors
type InstructorHandler struct {
	instructorUC usecase.InstructorUsecase
	logger       *slog.Logger
}

// NewInstructorHandler is the constructor for InstructorHandler
func NewInstructorHandler(params InstructorHandlerParams) *InstructorHandler {
	return &InstructorHandler{
		instructorUC: params.InstructorUC,
		logger:       params.Logger,
	}
}

// CreateInstructorRequest is the body of an instructor creation
type CreateInstructorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"omitempty,min=6"`
}

// ListInstructors handles GET /api/instructors
func (h *InstructorHandler) ListInstructors(c echo.Context) error {
	instructors, err := h.instructorUC.ListInstructors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(instructors))
}

// CreateInstructor handles POST /api/instructors
func (h *InstructorHandler) CreateInstructor(c echo.Context) error {
	var req CreateInstructorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid instructor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	instructor, err := h.instructorUC.CreateInstructor(c.Request().Context(), usecase.CreateInstructorInput{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(instructor))
}

// DeleteInstructor handles DELETE /api/instructors/:id
func (h *InstructorHandler) DeleteInstructor(c echo.Context) error {
	if err := h.instructorUC.DeleteInstructor(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "Instructor deleted successfully",
	})
}
