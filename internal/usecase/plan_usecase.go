package usecase

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// PlanInput holds the writable fields of a subscription plan.
type PlanInput struct {
	Name            string
	Type            string
	PlanCategory    string
	Price           *float64
	Currency        string
	Credits         *int
	IntervalCredits int
	Unlimited       bool
	Description     string
	Features        []string
}

// PlanUsecase defines subscription plan management.
type PlanUsecase interface {
	ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id string) (*entity.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, input PlanInput) (*entity.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id string, input PlanInput) (*entity.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, id string) error
}
