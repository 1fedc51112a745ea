package impl

import (
	"context"
	"log/slog"
	"time"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"

	"github.com/google/uuid"
)

// accessChanger applies access status changes for users and clients alike.
type accessChanger struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	identity  service.IdentityProvider
	events    memberEvents
}

func (a accessChanger) change(ctx context.Context, logger *slog.Logger, user *entity.User, input usecase.ChangeAccessInput, now time.Time) (*usecase.AccessChangeOutput, error) {
	if !input.Status.IsValidFor(user.Role) {
		return nil, domainerrors.ErrInvalidAccessStatus.WithDetails(
			"status " + string(input.Status) + " is not valid for role " + user.Role.String())
	}

	previous := user.AccessStatus
	if previous == "" {
		previous = entity.DefaultAccessStatus(user.Role)
	}

	reason := input.Reason
	if reason == "" {
		reason = "Access status changed to " + string(input.Status)
	}
	changedBy := input.ChangedBy
	if changedBy == "" {
		changedBy = constants.SystemActor
	}

	user.AccessStatus = input.Status
	user.UpdatedAt = now
	if user.Role == entity.RoleClient {
		user.Disabled = input.Status == entity.AccessSuspended
	}

	if err := a.userRepo.UpdateUser(ctx, user, repository.UserAccessFields); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update access status")
	}

	if user.Role == entity.RoleClient {
		disabled := user.Disabled
		err := a.identity.UpdateIdentity(ctx, user.ID, service.IdentityUpdate{Disabled: &disabled})
		if err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(err, "failed to update auth account")
		}
	}

	accessLog := &entity.AccessLog{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		Role:           user.Role,
		PreviousStatus: previous,
		NewStatus:      input.Status,
		Reason:         reason,
		ChangedBy:      changedBy,
		ChangedAt:      now,
	}
	if err := a.auditRepo.CreateAccessLog(ctx, accessLog); err != nil {
		logger.Error("Failed to record access change",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	a.events.publish(ctx, logger, service.EventAccessChanged, user.ID, map[string]string{
		"previous_status": string(previous),
		"new_status":      string(input.Status),
		"reason":          reason,
	})

	return &usecase.AccessChangeOutput{PreviousStatus: previous, NewStatus: input.Status}, nil
}
