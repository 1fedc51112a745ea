// Package handler contains the HTTP handlers of the admin API.
package handler

import (
	"log/slog"
	"net/http"

	"fitsaga/internal/delivery/api/middleware"
	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/domain/entity"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves /api/users
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ListUsersRequest holds the query of a user listing
type ListUsersRequest struct {
	Role   string `query:"role"`
	Status string `query:"status"`
	Search string `query:"search"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

// UpdateUserRequest lists the user fields to change
type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	PhotoURL    *string `json:"photoUrl"`
	Disabled    *bool   `json:"disabled"`
	Role        *string `json:"role"`
}

// ChangeAccessRequest is the body of an access status change
type ChangeAccessRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// PaginationResponse describes an offset page
type PaginationResponse struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ListUsersResponse is one page of users
type ListUsersResponse struct {
	Users      []*UserResponse    `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c echo.Context) error {
	var req ListUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUC.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Role:   entity.Role(req.Role),
		Status: entity.AccessStatus(req.Status),
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListUsersResponse{
		Users: toUserResponses(out.Users),
		Pagination: PaginationResponse{
			Total: out.Pagination.Total,
			Page:  out.Pagination.Page,
			Limit: out.Pagination.Limit,
			Pages: out.Pagination.Pages,
		},
	})
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateUserInput{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		PhotoURL:    req.PhotoURL,
		Disabled:    req.Disabled,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "User deleted successfully",
	})
}

// ChangeAccess handles PATCH /api/users/:id/access
func (h *UserHandler) ChangeAccess(c echo.Context) error {
	var req ChangeAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUC.ChangeAccess(c.Request().Context(), c.Param("id"), usecase.ChangeAccessInput{
		Status:    entity.AccessStatus(req.Status),
		Reason:    req.Reason,
		ChangedBy: middleware.AdminID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccessChangeResponse(out))
}
