package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"
)

type tutorialService struct {
	tutorialRepo repository.TutorialRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewTutorialService creates the tutorial use case
func NewTutorialService(
	tutorialRepo repository.TutorialRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.TutorialUsecase {
	return &tutorialService{
		tutorialRepo: tutorialRepo,
		userRepo:     userRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// ListTutorials returns tutorials of one author. Admins may list every author; others only see their own.
func (srv *tutorialService) ListTutorials(ctx context.Context, actor usecase.Actor, authorID string) ([]*entity.Tutorial, error) {
	if actor.Role != entity.RoleAdmin {
		authorID = actor.ID
	}

	tutorials, err := srv.tutorialRepo.ListTutorials(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tutorials")
	}

	return tutorials, nil
}

func (srv *tutorialService) GetTutorial(ctx context.Context, id string) (*entity.Tutorial, error) {
	tutorial, err := srv.tutorialRepo.FindTutorialByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTutorialNotFound) {
			return nil, domainerrors.ErrTutorialNotFound
		}

		return nil, errors.Wrap(err, "failed to find tutorial")
	}

	return tutorial, nil
}

func (srv *tutorialService) CreateTutorial(ctx context.Context, actor usecase.Actor, input usecase.TutorialInput) (*entity.Tutorial, error) {
	if err := validateTutorialInput(input); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	tutorial := &entity.Tutorial{
		AuthorID:   actor.ID,
		AuthorName: srv.authorName(ctx, actor.ID),
		CreatedAt:  now,
	}
	applyTutorialInput(tutorial, input, now)

	if err := srv.tutorialRepo.CreateTutorial(ctx, tutorial); err != nil {
		return nil, errors.Wrap(err, "failed to create tutorial")
	}

	return tutorial, nil
}

func (srv *tutorialService) UpdateTutorial(ctx context.Context, actor usecase.Actor, id string, input usecase.TutorialInput) (*entity.Tutorial, error) {
	if err := validateTutorialInput(input); err != nil {
		return nil, err
	}

	tutorial, err := srv.authoredTutorial(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	applyTutorialInput(tutorial, input, srv.now().UTC())

	if err := srv.tutorialRepo.UpdateTutorial(ctx, tutorial); err != nil {
		return nil, errors.Wrap(err, "failed to update tutorial")
	}

	return tutorial, nil
}

func (srv *tutorialService) DeleteTutorial(ctx context.Context, actor usecase.Actor, id string) error {
	if _, err := srv.authoredTutorial(ctx, actor, id); err != nil {
		return err
	}

	if err := srv.tutorialRepo.DeleteTutorial(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTutorialNotFound) {
			return domainerrors.ErrTutorialNotFound
		}

		return errors.Wrap(err, "failed to delete tutorial")
	}

	return nil
}

// authoredTutorial loads a tutorial the actor is allowed to change.
func (srv *tutorialService) authoredTutorial(ctx context.Context, actor usecase.Actor, id string) (*entity.Tutorial, error) {
	tutorial, err := srv.GetTutorial(ctx, id)
	if err != nil {
		return nil, err
	}
	if tutorial.AuthorID != actor.ID {
		return nil, domainerrors.ErrNotTutorialAuthor
	}

	return tutorial, nil
}

// authorName is best effort; a tutorial is still created when the author cannot be loaded.
func (srv *tutorialService) authorName(ctx context.Context, id string) string {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		srv.logger.WarnContext(ctx, "Tutorial author not found", slog.String("author_id", id), slog.Any("error", err))

		return ""
	}

	return user.FullName
}

func validateTutorialInput(input usecase.TutorialInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	for _, day := range input.Days {
		for _, exercise := range day.Exercises {
			if exercise.Sets < 0 || exercise.Repetitions < 0 || exercise.RestTimeBetweenSets < 0 || exercise.RestTimeAfterExercise < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("exercise values must not be negative")
			}
		}
	}

	return nil
}

func applyTutorialInput(tutorial *entity.Tutorial, input usecase.TutorialInput, now time.Time) {
	tutorial.Title = strings.TrimSpace(input.Title)
	tutorial.Description = input.Description
	tutorial.Category = input.Category
	tutorial.Difficulty = input.Difficulty
	tutorial.Days = input.Days
	tutorial.UpdatedAt = now
}
