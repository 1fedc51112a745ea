package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	bookingRepo repository.BookingRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: sessionRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) ListSessions(ctx context.Context, filter repository.SessionFilter) ([]*entity.Session, error) {
	sessions, err := srv.sessionRepo.ListSessions(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

// DeleteSessions removes the sessions in one batch. Nothing is deleted when any session
// has a confirmed booking or has already started.
func (srv *sessionService) DeleteSessions(ctx context.Context, ids []string) (*usecase.DeleteSessionsOutput, error) {
	ids = compactIDs(ids)
	if len(ids) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no session IDs provided")
	}

	sessions, err := srv.sessionRepo.FindSessionsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sessions")
	}

	if err := srv.checkDeletable(ctx, ids, sessions); err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.DeleteSessions(ctx, ids); err != nil {
		return nil, errors.Wrap(err, "failed to delete sessions")
	}

	srv.log(ctx).Info("Sessions deleted", slog.Int("count", len(ids)))

	return &usecase.DeleteSessionsOutput{
		DeletedCount: len(ids),
		Message:      fmt.Sprintf("%d session(s) deleted successfully", len(ids)),
	}, nil
}

// DeleteSession removes one session under the same rules.
func (srv *sessionService) DeleteSession(ctx context.Context, id string) error {
	session, err := srv.sessionRepo.FindSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return errors.Wrap(err, "failed to find session")
	}

	ids := []string{id}
	if err := srv.checkDeletable(ctx, ids, []*entity.Session{session}); err != nil {
		return err
	}

	if err := srv.sessionRepo.DeleteSessions(ctx, ids); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// checkDeletable reports bookings first, then sessions that are in progress or completed.
func (srv *sessionService) checkDeletable(ctx context.Context, ids []string, sessions []*entity.Session) error {
	bookings, err := srv.bookingRepo.FindConfirmedBySessions(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to check session bookings")
	}
	if len(bookings) > 0 {
		booked := make([]string, 0, len(bookings))
		for _, booking := range bookings {
			if !slices.Contains(booked, booking.SessionID) {
				booked = append(booked, booking.SessionID)
			}
		}

		return domainerrors.NewConflictWithIDs(domainerrors.ErrSessionHasBookings, "sessionsWithBookings", booked)
	}

	var invalid []string
	for _, session := range sessions {
		if !session.IsDeletable() {
			invalid = append(invalid, session.ID)
		}
	}
	if len(invalid) > 0 {
		return domainerrors.NewConflictWithIDs(domainerrors.ErrSessionNotDeletable, "invalidSessions", invalid)
	}

	return nil
}

// compactIDs drops empty and repeated IDs, keeping the first occurrence.
func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}
