package usecase

import (
	"context"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/repository"
)

// DeleteSessionsOutput reports a session deletion.
type DeleteSessionsOutput struct {
	DeletedCount int
	Message      string
}

// SessionUsecase defines schedule management.
type SessionUsecase interface {
	ListSessions(ctx context.Context, filter repository.SessionFilter) ([]*entity.Session, error)

	// DeleteSessions removes sessions that have no confirmed bookings and have not started
	DeleteSessions(ctx context.Context, ids []string) (*DeleteSessionsOutput, error)

	// DeleteSession applies the same rules to a single session
	DeleteSession(ctx context.Context, id string) error
}
