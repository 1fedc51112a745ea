package usecase

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// CreateInstructorInput defines the data required to provision an instructor.
type CreateInstructorInput struct {
	Email       string
	FullName    string
	PhoneNumber string
	Password    string
}

// InstructorUsecase defines instructor administration.
type InstructorUsecase interface {
	ListInstructors(ctx context.Context) ([]*entity.User, error)
	CreateInstructor(ctx context.Context, input CreateInstructorInput) (*entity.User, error)
	// DeleteInstructor removes the instructor and detaches their sessions and activities
	DeleteInstructor(ctx context.Context, id string) error
}
