package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	mockRepo "fitsaga/internal/mocks/repository"
	mockSvc "fitsaga/internal/mocks/service"
	"fitsaga/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMemberNotificationService(t *testing.T) (usecase.MemberNotificationUsecase, *mockRepo.MockUserRepository, *mockSvc.MockNotificationService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMemberNotificationService(userRepo, notificationSvc, logger), userRepo, notificationSvc
}

func creditsResetEvent(locale string) *service.MemberEvent {
	data := map[string]string{"credits": "8", "interval_credits": "4"}
	if locale != "" {
		data["locale"] = locale
	}

	return &service.MemberEvent{ID: "evt-1", Type: service.EventCreditsReset, UserID: "c1", Data: data}
}

func TestMemberNotificationService_NotifyMember_PrunesInvalidTokens(t *testing.T) {
	svc, userRepo, notificationSvc := createTestMemberNotificationService(t)
	ctx := context.Background()

	user := &entity.User{ID: "c1", Role: entity.RoleClient, FCMTokens: []string{"t1", "t2", "t3"}, Client: &entity.ClientProfile{NotificationPreferences: entity.NotificationPreferences{Push: true}}}
	userRepo.EXPECT().FindUserByID(ctx, "c1").Return(user, nil)
	notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"t1", "t2", "t3"}, msg.Tokens) &&
				msg.Title == "Your credits have been renewed" &&
				msg.Body == "You now have 8 credits and 4 interval credits." &&
				msg.Data["event_id"] == "evt-1" && msg.Data["event_type"] == service.EventCreditsReset && msg.Data["credits"] == "8"
		})).
		Return(&service.PushReport{Sent: 1, Failed: 2, InvalidTokens: []string{"t2", "t3"}}, nil)
	userRepo.EXPECT().RemoveFCMTokens(ctx, "c1", []string{"t2", "t3"}).Return(nil)

	result, err := svc.NotifyMember(ctx, creditsResetEvent(""))

	require.NoError(t, err)
	assert.Equal(t, usecase.NotifyResult{Sent: 1, Failed: 2, InvalidTokens: 2}, *result)
}

func TestMemberNotificationService_NotifyMember_SpanishLocale(t *testing.T) {
	svc, userRepo, notificationSvc := createTestMemberNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByID(ctx, "c1").Return(&entity.User{ID: "c1", FCMTokens: []string{"t1"}}, nil)
	notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "Tus créditos se han renovado" && msg.Body == "Ahora tienes 8 créditos y 4 créditos de intervalo."
		})).
		Return(&service.PushReport{Sent: 1}, nil)

	result, err := svc.NotifyMember(ctx, creditsResetEvent("es"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestMemberNotificationService_NotifyMember_OptedOut(t *testing.T) {
	svc, userRepo, _ := createTestMemberNotificationService(t)
	ctx := context.Background()

	profile := &entity.ClientProfile{NotificationPreferences: entity.NotificationPreferences{Push: false}}
	userRepo.EXPECT().FindUserByID(ctx, "c1").Return(&entity.User{ID: "c1", FCMTokens: []string{"t1"}, Client: profile}, nil)

	result, err := svc.NotifyMember(ctx, creditsResetEvent(""))

	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestMemberNotificationService_NotifyMember_NoDevices(t *testing.T) {
	svc, userRepo, _ := createTestMemberNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByID(ctx, "c1").Return(&entity.User{ID: "c1"}, nil)

	result, err := svc.NotifyMember(ctx, creditsResetEvent(""))

	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestMemberNotificationService_NotifyMember_Retryability(t *testing.T) {
	t.Run("unknown member is permanent", func(t *testing.T) {
		svc, userRepo, _ := createTestMemberNotificationService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindUserByID(ctx, "c1").Return(nil, repository.ErrUserNotFound)

		_, err := svc.NotifyMember(ctx, creditsResetEvent(""))

		require.Error(t, err)
		assert.False(t, usecase.IsRetryable(err))
	})

	t.Run("storage failure is retryable", func(t *testing.T) {
		svc, userRepo, _ := createTestMemberNotificationService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindUserByID(ctx, "c1").Return(nil, errors.New("unavailable"))

		_, err := svc.NotifyMember(ctx, creditsResetEvent(""))

		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("fcm failure is retryable", func(t *testing.T) {
		svc, userRepo, notificationSvc := createTestMemberNotificationService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindUserByID(ctx, "c1").Return(&entity.User{ID: "c1", FCMTokens: []string{"t1"}}, nil)
		notificationSvc.EXPECT().Push(ctx, mock.Anything).Return(nil, errors.New("quota"))

		_, err := svc.NotifyMember(ctx, creditsResetEvent(""))

		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("unknown event type is permanent", func(t *testing.T) {
		svc, _, _ := createTestMemberNotificationService(t)

		_, err := svc.NotifyMember(context.Background(), &service.MemberEvent{Type: "plan.deleted", UserID: "c1"})

		require.Error(t, err)
		assert.False(t, usecase.IsRetryable(err))
	})
}

func TestComposePush_AccessChanged(t *testing.T) {
	title, body, ok := composePush(&service.MemberEvent{
		Type: service.EventAccessChanged,
		Data: map[string]string{"new_status": "suspended", "locale": "fr"},
	})

	require.True(t, ok)
	assert.Equal(t, "Membership status updated", title)
	assert.Equal(t, "Your access status is now suspended.", body)
}
