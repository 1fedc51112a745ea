package repository

import (
	"context"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/errors"
)

// ErrPlanNotFound is returned when a subscription plan does not exist.
var ErrPlanNotFound = errors.New("subscription plan not found")

// PlanRepository defines the interface for subscription plan persistence.
type PlanRepository interface {
	// ListPlans returns every plan.
	ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error)

	// FindPlanByID retrieves a plan by ID.
	FindPlanByID(ctx context.Context, id string) (*entity.SubscriptionPlan, error)

	// FindPlansByIDs retrieves plans keyed by ID. Missing IDs are absent from the map.
	FindPlansByIDs(ctx context.Context, ids []string) (map[string]*entity.SubscriptionPlan, error)

	// CreatePlan persists a plan and assigns its ID.
	CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error

	// UpdatePlan overwrites a plan.
	UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error

	// DeletePlan removes a plan without checking for enrolled clients.
	DeletePlan(ctx context.Context, id string) error
}
