package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fitsaga/internal/delivery/api/middleware"
	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler serves /api/clients
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

// ListClientsRequest holds the query of a client listing
type ListClientsRequest struct {
	PageSize         int    `query:"pageSize" validate:"gte=0"`
	LastID           string `query:"lastId"`
	Status           string `query:"status"`
	SubscriptionTier string `query:"subscriptionTier"`
	MinCredits       string `query:"minCredits"`
	Search           string `query:"search"`
}

// CreateClientRequest is the body of a client creation
type CreateClientRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone"`
	SubscriptionTier string `json:"subscriptionTier"`
	AccessStatus     string `json:"accessStatus" validate:"omitempty,oneof=active suspended inactive"`
}

// ClientUpdatesRequest lists the fields a batch update may write
type ClientUpdatesRequest struct {
	AccessStatus     *string  `json:"accessStatus" validate:"omitempty,oneof=active suspended inactive"`
	SubscriptionTier *string  `json:"subscriptionTier"`
	Credits          *int     `json:"credits" validate:"omitempty,gte=0"`
	GymCredits       *int     `json:"gymCredits" validate:"omitempty,gte=0"`
	IntervalCredits  *int     `json:"intervalCredits" validate:"omitempty,gte=0"`
	FitnessGoals     []string `json:"fitnessGoals"`
	Address          *string  `json:"address"`
	PhoneNumber      *string  `json:"phoneNumber"`
	FullName         *string  `json:"fullName"`
}

// BatchUpdateClientsRequest is the body of PATCH /api/clients
type BatchUpdateClientsRequest struct {
	ClientIDs []string             `json:"clientIds" validate:"required,min=1"`
	Updates   ClientUpdatesRequest `json:"updates"`
}

// ClientIDsRequest is the body of DELETE /api/clients
type ClientIDsRequest struct {
	ClientIDs []string `json:"clientIds" validate:"required,min=1"`
}

// NotificationPreferencesRequest changes the channels a client accepts
type NotificationPreferencesRequest struct {
	Email *bool `json:"email"`
	Push  *bool `json:"push"`
}

// UpdateClientRequest lists the client fields to change
type UpdateClientRequest struct {
	FullName                *string                         `json:"fullName"`
	PhoneNumber             *string                         `json:"phoneNumber"`
	Address                 *string                         `json:"address"`
	FitnessGoals            []string                        `json:"fitnessGoals"`
	SubscriptionTier        *string                         `json:"subscriptionTier"`
	NotificationPreferences *NotificationPreferencesRequest `json:"notificationPreferences"`
}

// AdjustCreditsRequest adds amount to a client's credits
type AdjustCreditsRequest struct {
	Amount *int   `json:"amount" validate:"required"`
	Reason string `json:"reason"`
}

// SetCreditsRequest overwrites a client's credit balances
type SetCreditsRequest struct {
	GymCredits      *int   `json:"gymCredits" validate:"required"`
	IntervalCredits *int   `json:"intervalCredits" validate:"required"`
	Reason          string `json:"reason"`
}

// AssignSubscriptionRequest enrolls a client in a plan
type AssignSubscriptionRequest struct {
	PlanID    string     `json:"planId" validate:"required"`
	StartDate *time.Time `json:"startDate"`
}

// ClientPageResponse is one cursor page of clients
type ClientPageResponse struct {
	Clients     []*UserResponse `json:"clients"`
	HasMore     bool            `json:"hasMore"`
	LastVisible string          `json:"lastVisible,omitempty"`
}

// ClientDetailResponse is a client with their latest bookings
type ClientDetailResponse struct {
	*UserResponse
	RecentBookings []*BookingResponse `json:"recentBookings"`
}

// AdjustCreditsResponse reports a credit adjustment
type AdjustCreditsResponse struct {
	PreviousCredits int `json:"previousCredits"`
	NewCredits      int `json:"newCredits"`
	Adjustment      int `json:"adjustment"`
}

// SubscriptionResponse is a client's subscription, balance and plan
type SubscriptionResponse struct {
	Subscription *SubscriptionDTO      `json:"subscription"`
	Credits      CreditBalanceResponse `json:"credits"`
	Plan         *PlanResponse         `json:"plan"`
}

// ListClients handles GET /api/clients
func (h *ClientHandler) ListClients(c echo.Context) error {
	var req ListClientsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	query := repository.ClientQuery{
		PageSize:         req.PageSize,
		LastID:           req.LastID,
		AccessStatus:     entity.AccessStatus(req.Status),
		SubscriptionTier: req.SubscriptionTier,
		Search:           req.Search,
	}
	if req.MinCredits != "" {
		minCredits, err := strconv.Atoi(req.MinCredits)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "minCredits must be an integer")
		}
		query.MinCredits = &minCredits
	}

	page, err := h.clientUC.ListClients(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ClientPageResponse{
		Clients:     toUserResponses(page.Clients),
		HasMore:     page.HasMore,
		LastVisible: page.LastVisible,
	})
}

// CreateClient handles POST /api/clients
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), usecase.CreateClientInput{
		Email:            req.Email,
		Name:             req.Name,
		Phone:            req.Phone,
		SubscriptionTier: req.SubscriptionTier,
		AccessStatus:     entity.AccessStatus(req.AccessStatus),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(client))
}

// BatchUpdateClients handles PATCH /api/clients
func (h *ClientHandler) BatchUpdateClients(c echo.Context) error {
	var req BatchUpdateClientsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updates := repository.ClientFieldUpdates{
		SubscriptionTier: req.Updates.SubscriptionTier,
		Credits:          req.Updates.Credits,
		GymCredits:       req.Updates.GymCredits,
		IntervalCredits:  req.Updates.IntervalCredits,
		FitnessGoals:     req.Updates.FitnessGoals,
		Address:          req.Updates.Address,
		PhoneNumber:      req.Updates.PhoneNumber,
		FullName:         req.Updates.FullName,
	}
	if req.Updates.AccessStatus != nil {
		status := entity.AccessStatus(*req.Updates.AccessStatus)
		updates.AccessStatus = &status
	}

	if err := h.clientUC.BatchUpdateClients(c.Request().Context(), req.ClientIDs, updates); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success":      true,
		"updatedCount": len(req.ClientIDs),
	})
}

// BatchDeleteClients handles DELETE /api/clients
func (h *ClientHandler) BatchDeleteClients(c echo.Context) error {
	var req ClientIDsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch delete input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.clientUC.BatchDeleteClients(c.Request().Context(), req.ClientIDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success":      true,
		"deletedCount": len(req.ClientIDs),
	})
}

// GetClient handles GET /api/clients/:id
func (h *ClientHandler) GetClient(c echo.Context) error {
	detail, err := h.clientUC.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ClientDetailResponse{
		UserResponse:   toUserResponse(detail.Client),
		RecentBookings: toBookingResponses(detail.RecentBookings),
	})
}

// UpdateClient handles PUT /api/clients/:id
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	var req UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	input := usecase.UpdateClientInput{
		FullName:         req.FullName,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		FitnessGoals:     req.FitnessGoals,
		SubscriptionTier: req.SubscriptionTier,
	}
	if prefs := req.NotificationPreferences; prefs != nil {
		input.NotificationPush = prefs.Push
		input.NotificationMail = prefs.Email
	}

	client, err := h.clientUC.UpdateClient(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(client))
}

// DeleteClient handles DELETE /api/clients/:id
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	if err := h.clientUC.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "Client deleted successfully",
	})
}

// AdjustCredits handles POST /api/clients/:id/credits
func (h *ClientHandler) AdjustCredits(c echo.Context) error {
	var req AdjustCreditsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.clientUC.AdjustCredits(c.Request().Context(), c.Param("id"), usecase.AdjustCreditsInput{
		Amount:     *req.Amount,
		Reason:     req.Reason,
		AdjustedBy: middleware.AdminID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AdjustCreditsResponse{
		PreviousCredits: out.PreviousCredits,
		NewCredits:      out.NewCredits,
		Adjustment:      out.Adjustment,
	})
}

// SetCredits handles PATCH /api/clients/:id/credits
func (h *ClientHandler) SetCredits(c echo.Context) error {
	var req SetCreditsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	balance, err := h.clientUC.SetCredits(c.Request().Context(), c.Param("id"), usecase.SetCreditsInput{
		GymCredits:      *req.GymCredits,
		IntervalCredits: *req.IntervalCredits,
		Reason:          req.Reason,
		AdjustedBy:      middleware.AdminID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCreditBalanceResponse(*balance))
}

// ChangeAccess handles PATCH /api/clients/:id/access
func (h *ClientHandler) ChangeAccess(c echo.Context) error {
	var req ChangeAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.clientUC.ChangeAccess(c.Request().Context(), c.Param("id"), usecase.ChangeAccessInput{
		Status:    entity.AccessStatus(req.Status),
		Reason:    req.Reason,
		ChangedBy: middleware.AdminID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccessChangeResponse(out))
}

// AssignSubscription handles POST /api/clients/:id/subscription
func (h *ClientHandler) AssignSubscription(c echo.Context) error {
	var req AssignSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.clientUC.AssignSubscription(c.Request().Context(), c.Param("id"), usecase.AssignSubscriptionInput{
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(out))
}

// GetSubscription handles GET /api/clients/:id/subscription
func (h *ClientHandler) GetSubscription(c echo.Context) error {
	out, err := h.clientUC.GetSubscription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(out))
}

func toSubscriptionResponse(out *usecase.SubscriptionOutput) SubscriptionResponse {
	return SubscriptionResponse{
		Subscription: toSubscriptionDTO(out.Subscription),
		Credits:      toCreditBalanceResponse(out.Credits),
		Plan:         toPlanResponse(out.Plan),
	}
}
