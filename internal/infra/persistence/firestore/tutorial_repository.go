package firestore

import (
	"context"
	"slices"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// tutorialRepository implements the repository.TutorialRepository interface.
type tutorialRepository struct {
	client *fs.Client
}

// NewTutorialRepository is the constructor for tutorialRepository.
func NewTutorialRepository(client *fs.Client) repository.TutorialRepository {
	return &tutorialRepository{
		client: client,
	}
}

func (repo *tutorialRepository) tutorials() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionTutorials)
}

func (repo *tutorialRepository) ListTutorials(ctx context.Context, authorID string) ([]*entity.Tutorial, error) {
	query := repo.tutorials().Query
	if authorID != "" {
		query = query.Where("authorId", "==", authorID)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tutorials")
	}

	tutorials := make([]*entity.Tutorial, 0, len(snaps))
	for _, snap := range snaps {
		tutorial, err := decodeTutorial(snap)
		if err != nil {
			return nil, err
		}
		tutorials = append(tutorials, tutorial)
	}

	// Sorted here so the author filter needs no composite index.
	slices.SortFunc(tutorials, func(a, b *entity.Tutorial) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return tutorials, nil
}

func (repo *tutorialRepository) FindTutorialByID(ctx context.Context, id string) (*entity.Tutorial, error) {
	snap, err := repo.tutorials().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrTutorialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find tutorial")
	}

	return decodeTutorial(snap)
}

func (repo *tutorialRepository) CreateTutorial(ctx context.Context, tutorial *entity.Tutorial) error {
	ref := repo.tutorials().NewDoc()
	tutorial.ID = ref.ID

	if _, err := ref.Create(ctx, fromTutorialDomain(tutorial)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tutorial")
	}

	return nil
}

func (repo *tutorialRepository) UpdateTutorial(ctx context.Context, tutorial *entity.Tutorial) error {
	if _, err := repo.tutorials().Doc(tutorial.ID).Set(ctx, fromTutorialDomain(tutorial)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tutorial")
	}

	return nil
}

func (repo *tutorialRepository) DeleteTutorial(ctx context.Context, id string) error {
	if _, err := repo.tutorials().Doc(id).Delete(ctx, fs.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrTutorialNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tutorial")
	}

	return nil
}

func decodeTutorial(snap *fs.DocumentSnapshot) (*entity.Tutorial, error) {
	var doc model.TutorialDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode tutorial %s", snap.Ref.ID)
	}

	return toTutorialDomain(snap.Ref.ID, &doc), nil
}

func toTutorialDomain(id string, data *model.TutorialDocument) *entity.Tutorial {
	days := make([]entity.TutorialDay, 0, len(data.Days))
	for _, day := range data.Days {
		exercises := make([]entity.Exercise, 0, len(day.Exercises))
		for _, exercise := range day.Exercises {
			exercises = append(exercises, entity.Exercise(exercise))
		}
		days = append(days, entity.TutorialDay{
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
			Exercises:   exercises,
		})
	}

	return &entity.Tutorial{
		ID:          id,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Difficulty:  data.Difficulty,
		AuthorID:    data.AuthorID,
		AuthorName:  data.AuthorName,
		Days:        days,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTutorialDomain(data *entity.Tutorial) *model.TutorialDocument {
	days := make([]model.DayDocument, 0, len(data.Days))
	for _, day := range data.Days {
		exercises := make([]model.ExerciseDocument, 0, len(day.Exercises))
		for _, exercise := range day.Exercises {
			exercises = append(exercises, model.ExerciseDocument(exercise))
		}
		days = append(days, model.DayDocument{
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
			Exercises:   exercises,
		})
	}

	return &model.TutorialDocument{
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Difficulty:  data.Difficulty,
		AuthorID:    data.AuthorID,
		AuthorName:  data.AuthorName,
		Duration:    data.TotalDuration(),
		Days:        days,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
