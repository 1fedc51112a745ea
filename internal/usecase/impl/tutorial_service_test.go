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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tutorialServiceFixtures struct {
	service      usecase.TutorialUsecase
	tutorialRepo *mockRepo.MockTutorialRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestTutorialService(t *testing.T) tutorialServiceFixtures {
	tutorialRepo := mockRepo.NewMockTutorialRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return tutorialServiceFixtures{
		service:      NewTutorialService(tutorialRepo, userRepo, logger),
		tutorialRepo: tutorialRepo,
		userRepo:     userRepo,
	}
}

var instructorActor = usecase.Actor{ID: "ins-1", Role: entity.RoleInstructor}

func TestTutorialService_ListTutorials_InstructorSeesOwn(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.tutorialRepo.EXPECT().ListTutorials(ctx, "ins-1").Return([]*entity.Tutorial{{ID: "t1"}}, nil)

	tutorials, err := fx.service.ListTutorials(ctx, instructorActor, "ins-2")

	require.NoError(t, err)
	assert.Len(t, tutorials, 1)
}

func TestTutorialService_ListTutorials_AdminPicksAuthor(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.tutorialRepo.EXPECT().ListTutorials(ctx, "ins-2").Return(nil, nil)

	_, err := fx.service.ListTutorials(ctx, usecase.Actor{ID: "adm", Role: entity.RoleAdmin}, "ins-2")

	require.NoError(t, err)
}

func TestTutorialService_CreateTutorial_SetsAuthor(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "ins-1").Return(&entity.User{ID: "ins-1", FullName: "Marta"}, nil)
	fx.tutorialRepo.EXPECT().CreateTutorial(ctx, mock.AnythingOfType("*entity.Tutorial")).Return(nil)

	tutorial, err := fx.service.CreateTutorial(ctx, instructorActor, usecase.TutorialInput{Title: "  Core basics "})

	require.NoError(t, err)
	assert.Equal(t, "Core basics", tutorial.Title)
	assert.Equal(t, "ins-1", tutorial.AuthorID)
	assert.Equal(t, "Marta", tutorial.AuthorName)
}

func TestTutorialService_CreateTutorial_AuthorLookupFails(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "ins-1").Return(nil, repository.ErrUserNotFound)
	fx.tutorialRepo.EXPECT().CreateTutorial(ctx, mock.Anything).Return(nil)

	tutorial, err := fx.service.CreateTutorial(ctx, instructorActor, usecase.TutorialInput{Title: "Core"})

	require.NoError(t, err)
	assert.Empty(t, tutorial.AuthorName)
}

func TestTutorialService_CreateTutorial_NegativeSets(t *testing.T) {
	fx := createTestTutorialService(t)

	_, err := fx.service.CreateTutorial(context.Background(), instructorActor, usecase.TutorialInput{
		Title: "Core",
		Days: []entity.TutorialDay{
			{DayNumber: 1, Exercises: []entity.Exercise{{Name: "Plank", Sets: -1}}},
		},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTutorialService_UpdateTutorial_NotAuthor(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.tutorialRepo.EXPECT().FindTutorialByID(ctx, "t1").Return(&entity.Tutorial{ID: "t1", AuthorID: "ins-2"}, nil)

	_, err := fx.service.UpdateTutorial(ctx, instructorActor, "t1", usecase.TutorialInput{Title: "Mine now"})

	require.True(t, errors.Is(err, domainerrors.ErrNotTutorialAuthor))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode())
}

func TestTutorialService_DeleteTutorial_NotAuthorEvenForAdmin(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.tutorialRepo.EXPECT().FindTutorialByID(ctx, "t1").Return(&entity.Tutorial{ID: "t1", AuthorID: "ins-2"}, nil)

	err := fx.service.DeleteTutorial(ctx, usecase.Actor{ID: "adm", Role: entity.RoleAdmin}, "t1")

	assert.True(t, errors.Is(err, domainerrors.ErrNotTutorialAuthor))
}

func TestTutorialService_DeleteTutorial_Success(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.tutorialRepo.EXPECT().FindTutorialByID(ctx, "t1").Return(&entity.Tutorial{ID: "t1", AuthorID: "ins-1"}, nil)
	fx.tutorialRepo.EXPECT().DeleteTutorial(ctx, "t1").Return(nil)

	require.NoError(t, fx.service.DeleteTutorial(ctx, instructorActor, "t1"))
}

func TestTutorialService_GetTutorial_NotFound(t *testing.T) {
	fx := createTestTutorialService(t)
	ctx := context.Background()

	fx.tutorialRepo.EXPECT().FindTutorialByID(ctx, "nope").Return(nil, repository.ErrTutorialNotFound)

	_, err := fx.service.GetTutorial(ctx, "nope")

	assert.True(t, errors.Is(err, domainerrors.ErrTutorialNotFound))
}
