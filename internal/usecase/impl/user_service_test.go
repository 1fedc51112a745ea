package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	auditRepo *mockRepo.MockAuditRepository
	identity  *mockSvc.MockIdentityProvider
	publisher *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	auditRepo := mockRepo.NewMockAuditRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		AuditRepo: auditRepo,
		Identity:  identity,
		Publisher: publisher,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		auditRepo: auditRepo,
		identity:  identity,
		publisher: publisher,
	}
}

func namedUsers(n int) []*entity.User {
	users := make([]*entity.User, 0, n)
	for i := range n {
		users = append(users, &entity.User{
			ID:       fmt.Sprintf("u%d", i),
			Email:    fmt.Sprintf("member%d@example.com", i),
			FullName: fmt.Sprintf("Member %d", i),
		})
	}

	return users
}

func TestUserService_ListUsers_Pagination(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListUsers(ctx, repository.UserFilter{Role: entity.RoleClient}).Return(namedUsers(25), nil)

	output, err := fx.service.ListUsers(ctx, usecase.ListUsersInput{Role: entity.RoleClient, Page: 3})

	require.NoError(t, err)
	assert.Len(t, output.Users, 5)
	assert.Equal(t, "u20", output.Users[0].ID)
	assert.Equal(t, usecase.Pagination{Total: 25, Page: 3, Limit: 10, Pages: 3}, output.Pagination)
}

func TestUserService_ListUsers_SearchAndPastLastPage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListUsers(ctx, repository.UserFilter{}).Return(namedUsers(12), nil)

	output, err := fx.service.ListUsers(ctx, usecase.ListUsersInput{Search: "MEMBER1", Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, output.Users)
	assert.Equal(t, 3, output.Pagination.Total)
	assert.Equal(t, 1, output.Pagination.Pages)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, "missing")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_RoleChangeSwapsProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	role := entity.RoleInstructor
	name := "New Name"

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{
		ID:     "u1",
		Role:   entity.RoleClient,
		Client: &entity.ClientProfile{Credits: 5},
	}, nil)
	fx.identity.EXPECT().UpdateIdentity(ctx, "u1", service.IdentityUpdate{DisplayName: &name}).Return(nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User"), repository.UserIdentityFields, repository.UserRoleFields).
		Return(nil)
	fx.identity.EXPECT().SetRole(ctx, "u1", entity.RoleInstructor).Return(nil)

	user, err := fx.service.UpdateUser(ctx, "u1", usecase.UpdateUserInput{FullName: &name, Role: &role})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleInstructor, user.Role)
	assert.Nil(t, user.Client)
	assert.NotNil(t, user.Instructor)
	assert.Equal(t, entity.AccessGreen, user.AccessStatus)
}

func TestUserService_UpdateUser_ClaimFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	role := entity.RoleAdmin

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{ID: "u1", Role: entity.RoleStaff}, nil)
	fx.userRepo.EXPECT().UpdateUser(ctx, mock.Anything, repository.UserIdentityFields, repository.UserRoleFields).Return(nil)
	fx.identity.EXPECT().SetRole(ctx, "u1", entity.RoleAdmin).Return(errors.New("claims too large"))

	_, err := fx.service.UpdateUser(ctx, "u1", usecase.UpdateUserInput{Role: &role})

	assert.True(t, errors.Is(err, domainerrors.ErrClaimUpdateFailed))
}

func TestUserService_UpdateUser_DeletedMeanwhile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{ID: "u1", Role: entity.RoleStaff}, nil)
	fx.userRepo.EXPECT().UpdateUser(ctx, mock.Anything, repository.UserIdentityFields).Return(repository.ErrUserNotFound)

	_, err := fx.service.UpdateUser(ctx, "u1", usecase.UpdateUserInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	role := entity.Role("owner")

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{ID: "u1", Role: entity.RoleStaff}, nil)

	_, err := fx.service.UpdateUser(ctx, "u1", usecase.UpdateUserInput{Role: &role})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	email := "taken@example.com"

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{ID: "u1", Email: "old@example.com"}, nil)
	fx.identity.EXPECT().UpdateIdentity(ctx, "u1", mock.Anything).Return(service.ErrIdentityEmailExists)

	_, err := fx.service.UpdateUser(ctx, "u1", usecase.UpdateUserInput{Email: &email})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_MissingIdentity(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	fx.userRepo.EXPECT().DeleteUser(ctx, "u1").Return(nil)
	fx.identity.EXPECT().DeleteIdentity(ctx, "u1").Return(service.ErrIdentityNotFound)

	require.NoError(t, fx.service.DeleteUser(ctx, "u1"))
}

func TestUserService_ChangeAccess_Instructor(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "i1").Return(&entity.User{ID: "i1", Role: entity.RoleInstructor}, nil)
	fx.userRepo.EXPECT().UpdateUser(ctx, mock.Anything, repository.UserAccessFields).Return(nil)
	fx.auditRepo.EXPECT().
		CreateAccessLog(ctx, mock.MatchedBy(func(l *entity.AccessLog) bool {
			return l.PreviousStatus == entity.AccessGreen && l.NewStatus == entity.AccessRed &&
				l.Reason == "late payments" && l.ChangedBy == "adm-1"
		})).
		Return(errors.New("audit down"))
	fx.publisher.EXPECT().PublishMemberEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	output, err := fx.service.ChangeAccess(ctx, "i1", usecase.ChangeAccessInput{
		Status:    entity.AccessRed,
		Reason:    "late payments",
		ChangedBy: "adm-1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AccessGreen, output.PreviousStatus)
	fx.identity.AssertNotCalled(t, "UpdateIdentity", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ChangeAccess_AdminHasNoStatuses(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "a1").Return(&entity.User{ID: "a1", Role: entity.RoleAdmin}, nil)

	_, err := fx.service.ChangeAccess(ctx, "a1", usecase.ChangeAccessInput{Status: entity.AccessActive})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAccessStatus))
}
