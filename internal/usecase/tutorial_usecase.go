package usecase

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   string
	Role entity.Role
}

// TutorialInput holds the writable fields of a tutorial.
type TutorialInput struct {
	Title       string
	Description string
	Category    string
	Difficulty  string
	Days        []entity.TutorialDay
}

// TutorialUsecase defines tutorial management. Only the author may change a tutorial.
type TutorialUsecase interface {
	ListTutorials(ctx context.Context, actor Actor, authorID string) ([]*entity.Tutorial, error)
	GetTutorial(ctx context.Context, id string) (*entity.Tutorial, error)
	CreateTutorial(ctx context.Context, actor Actor, input TutorialInput) (*entity.Tutorial, error)
	UpdateTutorial(ctx context.Context, actor Actor, id string, input TutorialInput) (*entity.Tutorial, error)
	DeleteTutorial(ctx context.Context, actor Actor, id string) error
}
