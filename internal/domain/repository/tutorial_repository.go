package repository

import (
	"context"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/errors"
)

// ErrTutorialNotFound is returned when a tutorial does not exist.
var ErrTutorialNotFound = errors.New("tutorial not found")

// TutorialRepository defines the interface for tutorial persistence.
type TutorialRepository interface {
	// ListTutorials returns tutorials, optionally restricted to one author.
	ListTutorials(ctx context.Context, authorID string) ([]*entity.Tutorial, error)

	// FindTutorialByID retrieves a tutorial by ID.
	FindTutorialByID(ctx context.Context, id string) (*entity.Tutorial, error)

	// CreateTutorial persists a tutorial and assigns its ID.
	CreateTutorial(ctx context.Context, tutorial *entity.Tutorial) error

	// UpdateTutorial overwrites a tutorial.
	UpdateTutorial(ctx context.Context, tutorial *entity.Tutorial) error

	// DeleteTutorial removes a tutorial.
	DeleteTutorial(ctx context.Context, id string) error
}
