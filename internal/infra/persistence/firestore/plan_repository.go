package firestore

import (
	"context"
	"time"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	client *fs.Client
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(client *fs.Client) repository.PlanRepository {
	return &planRepository{
		client: client,
	}
}

func (repo *planRepository) plans() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionSubscriptionPlans)
}

func (repo *planRepository) ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	snaps, err := repo.plans().OrderBy("price", fs.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plans")
	}

	plans := make([]*entity.SubscriptionPlan, 0, len(snaps))
	for _, snap := range snaps {
		plan, err := decodePlan(snap)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func (repo *planRepository) FindPlanByID(ctx context.Context, id string) (*entity.SubscriptionPlan, error) {
	snap, err := repo.plans().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find plan")
	}

	return decodePlan(snap)
}

// FindPlansByIDs fetches plans in one round trip; IDs without a document are left out.
func (repo *planRepository) FindPlansByIDs(ctx context.Context, ids []string) (map[string]*entity.SubscriptionPlan, error) {
	plans := make(map[string]*entity.SubscriptionPlan, len(ids))
	if len(ids) == 0 {
		return plans, nil
	}

	snaps, err := repo.client.GetAll(ctx, docRefs(repo.plans(), ids))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch plans")
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		plan, err := decodePlan(snap)
		if err != nil {
			return nil, err
		}
		plans[plan.ID] = plan
	}

	return plans, nil
}

func (repo *planRepository) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	ref := repo.plans().NewDoc()
	plan.ID = ref.ID

	if _, err := ref.Create(ctx, fromPlanDomain(plan)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	return nil
}

func (repo *planRepository) UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	ref := repo.plans().Doc(plan.ID)

	// Set would silently create a missing plan.
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find plan")
	}

	if _, err := ref.Set(ctx, fromPlanDomain(plan)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update plan")
	}

	return nil
}

func (repo *planRepository) DeletePlan(ctx context.Context, id string) error {
	if _, err := repo.plans().Doc(id).Delete(ctx, fs.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete plan")
	}

	return nil
}

func decodePlan(snap *fs.DocumentSnapshot) (*entity.SubscriptionPlan, error) {
	var doc model.PlanDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode plan %s", snap.Ref.ID)
	}

	return toPlanDomain(snap.Ref.ID, &doc), nil
}

func toPlanDomain(id string, data *model.PlanDocument) *entity.SubscriptionPlan {
	return &entity.SubscriptionPlan{
		ID:              id,
		Name:            data.Name,
		Type:            data.Type,
		PlanCategory:    data.PlanCategory,
		Price:           data.Price,
		Currency:        data.Currency,
		Credits:         data.Credits,
		IntervalCredits: data.IntervalCredits,
		Unlimited:       data.Unlimited,
		Description:     data.Description,
		Features:        data.Features,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPlanDomain(data *entity.SubscriptionPlan) *model.PlanDocument {
	updatedAt := data.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	return &model.PlanDocument{
		Name:            data.Name,
		Type:            data.Type,
		PlanCategory:    data.PlanCategory,
		Price:           data.Price,
		Currency:        data.Currency,
		Credits:         data.Credits,
		IntervalCredits: data.IntervalCredits,
		Unlimited:       data.Unlimited,
		Description:     data.Description,
		Features:        data.Features,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}
