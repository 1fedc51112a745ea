package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/service"

	"github.com/google/uuid"
)

// memberEvents publishes member events without failing the calling operation.
type memberEvents struct {
	publisher service.EventPublisher
}

func (e memberEvents) publish(ctx context.Context, logger *slog.Logger, eventType, userID string, data map[string]string) {
	if e.publisher == nil {
		return
	}

	event := &service.MemberEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		UserID:     userID,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	if err := e.publisher.PublishMemberEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish member event",
			slog.String("event_type", eventType),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}
