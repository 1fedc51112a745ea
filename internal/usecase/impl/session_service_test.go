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
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	sessionRepo *mockRepo.MockSessionRepository
	bookingRepo *mockRepo.MockBookingRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return sessionServiceFixtures{
		service:     NewSessionService(sessionRepo, bookingRepo, logger),
		sessionRepo: sessionRepo,
		bookingRepo: bookingRepo,
	}
}

func TestSessionService_DeleteSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	ids := []string{"s1", "s2"}

	fx.sessionRepo.EXPECT().FindSessionsByIDs(ctx, ids).Return([]*entity.Session{
		{ID: "s1", Status: entity.SessionScheduled},
		{ID: "s2", Status: entity.SessionCancelled},
	}, nil)
	fx.bookingRepo.EXPECT().FindConfirmedBySessions(ctx, ids).Return(nil, nil)
	fx.sessionRepo.EXPECT().DeleteSessions(ctx, ids).Return(nil)

	output, err := fx.service.DeleteSessions(ctx, []string{"s1", "", "s2", "s1"})

	require.NoError(t, err)
	assert.Equal(t, 2, output.DeletedCount)
	assert.Equal(t, "2 session(s) deleted successfully", output.Message)
}

func TestSessionService_DeleteSessions_EmptyIDs(t *testing.T) {
	fx := createTestSessionService(t)

	output, err := fx.service.DeleteSessions(context.Background(), []string{""})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_DeleteSessions_BookedSessionsBlockAll(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	ids := []string{"s1", "s2", "s3"}

	fx.sessionRepo.EXPECT().FindSessionsByIDs(ctx, ids).Return([]*entity.Session{
		{ID: "s1", Status: entity.SessionScheduled},
		{ID: "s2", Status: entity.SessionCompleted},
		{ID: "s3", Status: entity.SessionScheduled},
	}, nil)
	fx.bookingRepo.EXPECT().FindConfirmedBySessions(ctx, ids).Return([]*entity.Booking{
		{ID: "b1", SessionID: "s3"},
		{ID: "b2", SessionID: "s3"},
		{ID: "b3", SessionID: "s1"},
	}, nil)

	output, err := fx.service.DeleteSessions(ctx, ids)

	assert.Nil(t, output)
	require.True(t, errors.Is(err, domainerrors.ErrSessionHasBookings))

	var payloadErr domainerrors.PayloadError
	require.True(t, errors.As(err, &payloadErr))
	assert.Equal(t, 409, payloadErr.HTTPCode())
	assert.Equal(t, map[string][]string{"sessionsWithBookings": {"s3", "s1"}}, payloadErr.Payload())
	fx.sessionRepo.AssertNotCalled(t, "DeleteSessions")
}

func TestSessionService_DeleteSessions_StartedSessions(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	ids := []string{"s1", "s2", "s3"}

	fx.sessionRepo.EXPECT().FindSessionsByIDs(ctx, ids).Return([]*entity.Session{
		{ID: "s1", Status: entity.SessionInProgress},
		{ID: "s2", Status: entity.SessionScheduled},
		{ID: "s3", Status: entity.SessionCompleted},
	}, nil)
	fx.bookingRepo.EXPECT().FindConfirmedBySessions(ctx, ids).Return(nil, nil)

	_, err := fx.service.DeleteSessions(ctx, ids)

	require.True(t, errors.Is(err, domainerrors.ErrSessionNotDeletable))

	var payloadErr domainerrors.PayloadError
	require.True(t, errors.As(err, &payloadErr))
	assert.Equal(t, map[string][]string{"invalidSessions": {"s1", "s3"}}, payloadErr.Payload())
}

func TestSessionService_DeleteSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().FindSessionByID(ctx, "missing").Return(nil, repository.ErrSessionNotFound)

	err := fx.service.DeleteSession(ctx, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_DeleteSession_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().FindSessionByID(ctx, "s1").Return(&entity.Session{ID: "s1", Status: entity.SessionScheduled}, nil)
	fx.bookingRepo.EXPECT().FindConfirmedBySessions(ctx, []string{"s1"}).Return(nil, nil)
	fx.sessionRepo.EXPECT().DeleteSessions(ctx, []string{"s1"}).Return(nil)

	require.NoError(t, fx.service.DeleteSession(ctx, "s1"))
}
