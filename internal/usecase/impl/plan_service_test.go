package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	mockRepo "fitsaga/internal/mocks/repository"
	"fitsaga/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPlanService(t *testing.T) (usecase.PlanUsecase, *mockRepo.MockPlanRepository) {
	planRepo := mockRepo.NewMockPlanRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPlanService(planRepo, logger), planRepo
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestPlanService_CreatePlan_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.PlanInput
	}{
		{name: "missing name", input: usecase.PlanInput{Price: floatPtr(30), Credits: intPtr(8)}},
		{name: "missing price", input: usecase.PlanInput{Name: "Basic", Credits: intPtr(8)}},
		{name: "missing credits", input: usecase.PlanInput{Name: "Basic", Price: floatPtr(30)}},
		{name: "zero credits on limited plan", input: usecase.PlanInput{Name: "Basic", Price: floatPtr(30), Credits: intPtr(0)}},
		{name: "negative price", input: usecase.PlanInput{Name: "Basic", Price: floatPtr(-1), Credits: intPtr(8)}},
		{name: "negative interval credits", input: usecase.PlanInput{Name: "Basic", Price: floatPtr(30), Credits: intPtr(8), IntervalCredits: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestPlanService(t)

			plan, err := svc.CreatePlan(context.Background(), tt.input)

			assert.Nil(t, plan)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPlanService_CreatePlan_UnlimitedWithZeroCredits(t *testing.T) {
	svc, planRepo := createTestPlanService(t)
	ctx := context.Background()

	planRepo.EXPECT().CreatePlan(ctx, mock.AnythingOfType("*entity.SubscriptionPlan")).
		Run(func(_ context.Context, plan *entity.SubscriptionPlan) { plan.ID = "premium" }).
		Return(nil)

	plan, err := svc.CreatePlan(ctx, usecase.PlanInput{
		Name:      "Premium",
		Price:     floatPtr(79.9),
		Currency:  "EUR",
		Credits:   intPtr(0),
		Unlimited: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "premium", plan.ID)
	assert.True(t, plan.Unlimited)
	assert.Equal(t, plan.CreatedAt, plan.UpdatedAt)
}

func TestPlanService_UpdatePlan_NotFound(t *testing.T) {
	svc, planRepo := createTestPlanService(t)
	ctx := context.Background()

	planRepo.EXPECT().FindPlanByID(ctx, "ghost").Return(nil, repository.ErrPlanNotFound)

	_, err := svc.UpdatePlan(ctx, "ghost", usecase.PlanInput{Name: "Basic", Price: floatPtr(30), Credits: intPtr(8)})

	assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
}

func TestPlanService_DeletePlan_NotFound(t *testing.T) {
	svc, planRepo := createTestPlanService(t)
	ctx := context.Background()

	planRepo.EXPECT().DeletePlan(ctx, "ghost").Return(repository.ErrPlanNotFound)

	assert.True(t, errors.Is(svc.DeletePlan(ctx, "ghost"), domainerrors.ErrPlanNotFound))
}
