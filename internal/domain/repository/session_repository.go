package repository

import (
	"context"
	"time"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/errors"
)

// ErrSessionNotFound is returned when a session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionFilter narrows session listings.
type SessionFilter struct {
	From         *time.Time
	To           *time.Time
	InstructorID string
}

// SessionRepository defines the interface for session persistence.
type SessionRepository interface {
	// ListSessions returns sessions ordered by start time.
	ListSessions(ctx context.Context, filter SessionFilter) ([]*entity.Session, error)

	// FindSessionByID retrieves a session by ID.
	FindSessionByID(ctx context.Context, id string) (*entity.Session, error)

	// FindSessionsByIDs retrieves the sessions that exist among ids.
	FindSessionsByIDs(ctx context.Context, ids []string) ([]*entity.Session, error)

	// DeleteSessions removes sessions in one batch.
	DeleteSessions(ctx context.Context, ids []string) error
}

// BookingRepository defines the read operations on bookings needed by the portal.
type BookingRepository interface {
	// FindConfirmedBySessions returns confirmed bookings for any of the sessions.
	FindConfirmedBySessions(ctx context.Context, sessionIDs []string) ([]*entity.Booking, error)

	// FindConfirmedByUsers returns confirmed bookings held by any of the users.
	FindConfirmedByUsers(ctx context.Context, userIDs []string) ([]*entity.Booking, error)

	// FindRecentByUser returns the latest bookings of a user, newest first.
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.Booking, error)
}
