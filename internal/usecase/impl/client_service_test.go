package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
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

var clientTestNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

type clientServiceFixtures struct {
	service     usecase.ClientUsecase
	userRepo    *mockRepo.MockUserRepository
	planRepo    *mockRepo.MockPlanRepository
	bookingRepo *mockRepo.MockBookingRepository
	auditRepo   *mockRepo.MockAuditRepository
	identity    *mockSvc.MockIdentityProvider
	publisher   *mockSvc.MockEventPublisher
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	fx := clientServiceFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		planRepo:    mockRepo.NewMockPlanRepository(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		auditRepo:   mockRepo.NewMockAuditRepository(t),
		identity:    mockSvc.NewMockIdentityProvider(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewClientService(ClientServiceParams{
		UserRepo:    fx.userRepo,
		PlanRepo:    fx.planRepo,
		BookingRepo: fx.bookingRepo,
		AuditRepo:   fx.auditRepo,
		Identity:    fx.identity,
		Publisher:   fx.publisher,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	fx.service.(*clientService).now = func() time.Time { return clientTestNow }

	return fx
}

func testClient(id string) *entity.User {
	return &entity.User{
		ID:           id,
		Email:        id + "@example.com",
		FullName:     "Client " + id,
		Role:         entity.RoleClient,
		AccessStatus: entity.AccessActive,
		Client:       entity.NewClientProfile(clientTestNow.AddDate(-1, 0, 0)),
	}
}

func TestClientService_CreateClient_Success(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.planRepo.EXPECT().FindPlanByID(ctx, "gold").
		Return(&entity.SubscriptionPlan{ID: "gold", Name: "Gold", Credits: 12, IntervalCredits: 1}, nil)
	fx.identity.EXPECT().
		CreateIdentity(ctx, &service.NewIdentity{Email: "ana@example.com", DisplayName: "Ana", PhoneNumber: "+34600000000"}).
		Return("uid-1", nil)
	fx.identity.EXPECT().SetRole(ctx, "uid-1", entity.RoleClient).Return(nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateClient(ctx, usecase.CreateClientInput{
		Email:            " ana@example.com ",
		Name:             "Ana",
		Phone:            "+34600000000",
		SubscriptionTier: "gold",
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, entity.AccessActive, user.AccessStatus)
	assert.Equal(t, "gold", user.Client.SubscriptionTier)
	assert.Equal(t, 12, user.Client.Credits)
	assert.Equal(t, 4, user.Client.IntervalCredits)
	assert.True(t, user.Client.NotificationPreferences.Push)
}

func TestClientService_CreateClient_EmailTaken(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(testClient("c1"), nil)

	user, err := fx.service.CreateClient(ctx, usecase.CreateClientInput{Email: "ana@example.com", Name: "Ana"})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestClientService_CreateClient_RollsBackIdentity(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByEmail(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.identity.EXPECT().CreateIdentity(ctx, mock.Anything).Return("uid-1", nil)
	fx.identity.EXPECT().SetRole(ctx, "uid-1", entity.RoleClient).Return(nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(errors.New("write failed"))
	fx.identity.EXPECT().DeleteIdentity(ctx, "uid-1").Return(nil)

	user, err := fx.service.CreateClient(ctx, usecase.CreateClientInput{Email: "ana@example.com", Name: "Ana"})

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestClientService_CreateClient_MissingName(t *testing.T) {
	fx := createTestClientService(t)

	_, err := fx.service.CreateClient(context.Background(), usecase.CreateClientInput{Email: "ana@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestClientService_BatchDeleteClients_BlockedByBookings(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	ids := []string{"c1", "c2", "c3"}

	fx.bookingRepo.EXPECT().FindConfirmedByUsers(ctx, ids).Return([]*entity.Booking{
		{ID: "b1", UserID: "c2"},
		{ID: "b2", UserID: "c2"},
	}, nil)

	err := fx.service.BatchDeleteClients(ctx, ids)

	require.True(t, errors.Is(err, domainerrors.ErrClientsHaveBookings))

	var payloadErr domainerrors.PayloadError
	require.True(t, errors.As(err, &payloadErr))
	assert.Equal(t, map[string][]string{"clientsWithBookings": {"c2"}}, payloadErr.Payload())
	fx.userRepo.AssertNotCalled(t, "DeleteUsers", mock.Anything, mock.Anything)
}

func TestClientService_BatchDeleteClients_IgnoresIdentityFailures(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	ids := []string{"c1", "c2"}

	fx.bookingRepo.EXPECT().FindConfirmedByUsers(ctx, ids).Return(nil, nil)
	fx.userRepo.EXPECT().DeleteUsers(ctx, ids).Return(nil)
	fx.identity.EXPECT().DeleteIdentity(ctx, "c1").Return(service.ErrIdentityNotFound)
	fx.identity.EXPECT().DeleteIdentity(ctx, "c2").Return(errors.New("quota exceeded"))

	require.NoError(t, fx.service.BatchDeleteClients(ctx, ids))
}

func TestClientService_BatchUpdateClients_RejectsInstructorStatus(t *testing.T) {
	fx := createTestClientService(t)
	status := entity.AccessGreen

	err := fx.service.BatchUpdateClients(context.Background(), []string{"c1"}, repository.ClientFieldUpdates{AccessStatus: &status})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAccessStatus))
}

func TestClientService_GetClient_NotAClient(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "i1").Return(&entity.User{ID: "i1", Role: entity.RoleInstructor}, nil)

	detail, err := fx.service.GetClient(ctx, "i1")

	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
}

func TestClientService_GetClient_WithRecentBookings(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	bookings := []*entity.Booking{{ID: "b1", UserID: "c1"}}

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(testClient("c1"), nil)
	fx.bookingRepo.EXPECT().FindRecentByUser(ctx, "c1", 5).Return(bookings, nil)

	detail, err := fx.service.GetClient(ctx, "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", detail.Client.ID)
	assert.Equal(t, bookings, detail.RecentBookings)
}

func TestClientService_AdjustCredits_ClampsAtZero(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().AdjustClientCredits(ctx, "c1", -5).Return(&repository.CreditChange{
		Previous: entity.ClientProfile{Credits: 3},
		Current:  entity.ClientProfile{Credits: 0},
	}, nil)
	fx.auditRepo.EXPECT().
		CreateCreditAdjustment(ctx, mock.MatchedBy(func(a *entity.CreditAdjustment) bool {
			return a.ClientID == "c1" && a.PreviousCredits == 3 && a.NewCredits == 0 &&
				a.Adjustment == -5 && a.AdjustedBy == constants.SystemActor && a.AdjustedAt.Equal(clientTestNow)
		})).
		Return(nil)

	output, err := fx.service.AdjustCredits(ctx, "c1", usecase.AdjustCreditsInput{Amount: -5})

	require.NoError(t, err)
	assert.Equal(t, usecase.AdjustCreditsOutput{PreviousCredits: 3, NewCredits: 0, Adjustment: -5}, *output)
}

func TestClientService_AdjustCredits_UnknownClient(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().AdjustClientCredits(ctx, "nobody", 2).Return(nil, repository.ErrNotAClient)

	_, err := fx.service.AdjustCredits(ctx, "nobody", usecase.AdjustCreditsInput{Amount: 2})

	assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
}

func TestClientService_SetCredits_RejectsNegative(t *testing.T) {
	fx := createTestClientService(t)

	_, err := fx.service.SetCredits(context.Background(), "c1", usecase.SetCreditsInput{GymCredits: -1})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestClientService_SetCredits_Success(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().SetClientBalances(ctx, "c1", 6, 2).Return(&repository.CreditChange{
		Previous: entity.ClientProfile{Credits: 4, GymCredits: 4},
		Current:  entity.ClientProfile{Credits: 8, GymCredits: 6, IntervalCredits: 2},
	}, nil)
	fx.auditRepo.EXPECT().
		CreateCreditAdjustment(ctx, mock.MatchedBy(func(a *entity.CreditAdjustment) bool {
			return a.Adjustment == 4 && a.AdjustedBy == "admin-1" && a.NewIntervalCredits == 2
		})).
		Return(errors.New("audit store down"))

	balance, err := fx.service.SetCredits(ctx, "c1", usecase.SetCreditsInput{GymCredits: 6, IntervalCredits: 2, AdjustedBy: "admin-1"})

	require.NoError(t, err)
	assert.Equal(t, usecase.CreditBalance{Total: 8, GymCredits: 6, IntervalCredits: 2}, *balance)
}

func TestClientService_ChangeAccess_SuspendDisablesLogin(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(testClient("c1"), nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.AccessStatus == entity.AccessSuspended && u.Disabled
		}), repository.UserAccessFields).
		Return(nil)
	disabled := true
	fx.identity.EXPECT().UpdateIdentity(ctx, "c1", service.IdentityUpdate{Disabled: &disabled}).Return(nil)
	fx.auditRepo.EXPECT().
		CreateAccessLog(ctx, mock.MatchedBy(func(l *entity.AccessLog) bool {
			return l.PreviousStatus == entity.AccessActive && l.NewStatus == entity.AccessSuspended &&
				l.Reason == "Access status changed to suspended" && l.ChangedBy == constants.SystemActor
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMemberEvent(ctx, mock.MatchedBy(func(e *service.MemberEvent) bool {
			return e.Type == service.EventAccessChanged && e.Data["new_status"] == "suspended"
		})).
		Return(nil)

	output, err := fx.service.ChangeAccess(ctx, "c1", usecase.ChangeAccessInput{Status: entity.AccessSuspended})

	require.NoError(t, err)
	assert.Equal(t, entity.AccessActive, output.PreviousStatus)
	assert.Equal(t, entity.AccessSuspended, output.NewStatus)
}

func TestClientService_ChangeAccess_InvalidStatus(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(testClient("c1"), nil)

	_, err := fx.service.ChangeAccess(ctx, "c1", usecase.ChangeAccessInput{Status: entity.AccessRed})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAccessStatus))
}

func TestClientService_AssignSubscription_GoldPlan(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(testClient("c1"), nil)
	fx.planRepo.EXPECT().FindPlanByID(ctx, "gold").
		Return(&entity.SubscriptionPlan{ID: "gold", Name: "Gold Plan", Credits: 10}, nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User"), repository.UserClientCreditFields, repository.UserClientSubscriptionFields).
		Return(nil)

	output, err := fx.service.AssignSubscription(ctx, "c1", usecase.AssignSubscriptionInput{PlanID: "gold", StartDate: &start})

	require.NoError(t, err)
	assert.Equal(t, "active", output.Subscription.Status)
	assert.Equal(t, start, output.Subscription.StartDate)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), output.Subscription.EndDate)
	assert.Equal(t, usecase.CreditBalance{Total: 10, GymCredits: 10, IntervalCredits: 4}, output.Credits)
	assert.Equal(t, "Gold Plan", output.Plan.Name)
}

func TestClientService_AssignSubscription_UnknownPlan(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(testClient("c1"), nil)
	fx.planRepo.EXPECT().FindPlanByID(ctx, "ghost").Return(nil, repository.ErrPlanNotFound)

	_, err := fx.service.AssignSubscription(ctx, "c1", usecase.AssignSubscriptionInput{PlanID: "ghost"})

	assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
}

func TestClientService_GetSubscription_None(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(testClient("c1"), nil)

	_, err := fx.service.GetSubscription(ctx, "c1")

	assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
}

func TestClientService_ListClients_CapsPageSize(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListClients(ctx, repository.ClientQuery{PageSize: 100, LastID: "c9"}).
		Return(&repository.ClientPage{HasMore: true, LastVisible: "c109"}, nil)

	page, err := fx.service.ListClients(ctx, repository.ClientQuery{PageSize: 1000, LastID: "c9"})

	require.NoError(t, err)
	assert.True(t, page.HasMore)
}
