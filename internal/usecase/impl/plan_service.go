package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"
)

type planService struct {
	planRepo repository.PlanRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewPlanService creates the subscription plan use case
func NewPlanService(planRepo repository.PlanRepository, logger *slog.Logger) usecase.PlanUsecase {
	return &planService{
		planRepo: planRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *planService) ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	plans, err := srv.planRepo.ListPlans(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

func (srv *planService) GetPlan(ctx context.Context, id string) (*entity.SubscriptionPlan, error) {
	plan, err := srv.planRepo.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return plan, nil
}

func (srv *planService) CreatePlan(ctx context.Context, input usecase.PlanInput) (*entity.SubscriptionPlan, error) {
	if err := validatePlanInput(input); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	plan := &entity.SubscriptionPlan{CreatedAt: now}
	applyPlanInput(plan, input, now)

	if err := srv.planRepo.CreatePlan(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	return plan, nil
}

func (srv *planService) UpdatePlan(ctx context.Context, id string, input usecase.PlanInput) (*entity.SubscriptionPlan, error) {
	if err := validatePlanInput(input); err != nil {
		return nil, err
	}

	plan, err := srv.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPlanInput(plan, input, srv.now().UTC())

	if err := srv.planRepo.UpdatePlan(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to update plan")
	}

	return plan, nil
}

// DeletePlan removes a plan. Clients enrolled in it keep the stale plan ID.
func (srv *planService) DeletePlan(ctx context.Context, id string) error {
	if err := srv.planRepo.DeletePlan(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return domainerrors.ErrPlanNotFound
		}

		return errors.Wrap(err, "failed to delete plan")
	}

	return nil
}

// validatePlanInput requires a name, a price and credits. Zero credits are only allowed for unlimited plans.
func validatePlanInput(input usecase.PlanInput) error {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	if input.Credits == nil || (*input.Credits == 0 && !input.Unlimited) {
		missing = append(missing, "credits")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	if *input.Price < 0 || *input.Credits < 0 || input.IntervalCredits < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price and credits must not be negative")
	}

	return nil
}

func applyPlanInput(plan *entity.SubscriptionPlan, input usecase.PlanInput, now time.Time) {
	plan.Name = strings.TrimSpace(input.Name)
	plan.Type = input.Type
	plan.PlanCategory = input.PlanCategory
	plan.Price = *input.Price
	plan.Currency = input.Currency
	plan.Credits = *input.Credits
	plan.IntervalCredits = input.IntervalCredits
	plan.Unlimited = input.Unlimited
	plan.Description = input.Description
	plan.Features = input.Features
	plan.UpdatedAt = now
}
