package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"
)

const creditResetMessage = "Credits reset successfully"

type creditService struct {
	userRepo  repository.UserRepository
	planRepo  repository.PlanRepository
	events    memberEvents
	batchSize int
	logger    *slog.Logger
	now       func() time.Time
}

// NewCreditService creates the credit reset use case
func NewCreditService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CreditUsecase {
	return &creditService{
		userRepo:  userRepo,
		planRepo:  planRepo,
		events:    memberEvents{publisher: publisher},
		batchSize: cfg.Credits.BatchSize,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *creditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResetCredits writes the periodic allotment of every client whose plan can be resolved.
// Chunks are committed in order and the first failing chunk aborts the run.
func (srv *creditService) ResetCredits(ctx context.Context) (*usecase.CreditResetOutput, error) {
	clients, err := srv.userRepo.ListUsers(ctx, repository.UserFilter{Role: entity.RoleClient})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	planIDs := make([]string, 0, len(clients))
	for _, client := range clients {
		if client.Client == nil {
			continue
		}
		if id := client.Client.PlanID(); id != "" {
			planIDs = append(planIDs, id)
		}
	}

	plans, err := srv.planRepo.FindPlansByIDs(ctx, planIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load subscription plans")
	}

	writes := make([]repository.CreditAllotmentWrite, 0, len(clients))
	skipped := 0
	for _, client := range clients {
		if client.Client == nil {
			skipped++

			continue
		}

		plan, ok := plans[client.Client.PlanID()]
		if !ok {
			skipped++

			continue
		}

		writes = append(writes, repository.CreditAllotmentWrite{
			ClientID:  client.ID,
			Allotment: entity.ResetAllotment(plan.Name),
		})
	}

	resetAt := srv.now().UTC()
	batchSize := max(1, srv.batchSize)
	committed := 0
	for start := 0; start < len(writes); start += batchSize {
		chunk := writes[start:min(start+batchSize, len(writes))]

		if err := srv.userRepo.ApplyCreditAllotments(ctx, chunk, resetAt); err != nil {
			srv.log(ctx).Error("Credit reset aborted",
				slog.Int("committed", committed),
				slog.Int("remaining", len(writes)-committed),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}

		committed += len(chunk)
	}

	for _, write := range writes {
		srv.events.publish(ctx, srv.log(ctx), service.EventCreditsReset, write.ClientID, map[string]string{
			"credits":          strconv.Itoa(write.Allotment.Total),
			"interval_credits": strconv.Itoa(write.Allotment.IntervalCredits),
			"unlimited":        strconv.FormatBool(write.Allotment.Unlimited),
		})
	}

	srv.log(ctx).Info("Credits reset",
		slog.Int("processed", committed),
		slog.Int("skipped", skipped),
	)

	return &usecase.CreditResetOutput{
		Success:   true,
		Message:   creditResetMessage,
		Processed: committed,
		Skipped:   skipped,
	}, nil
}
