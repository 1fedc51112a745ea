// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// --- Input DTOs ---

// ListUsersInput selects a page of users.
type ListUsersInput struct {
	Role   entity.Role
	Status entity.AccessStatus
	Search string
	Page   int
	Limit  int
}

// UpdateUserInput lists the user fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Email       *string
	FullName    *string
	PhoneNumber *string
	PhotoURL    *string
	Disabled    *bool
	Role        *entity.Role
}

// ChangeAccessInput describes an access status change.
type ChangeAccessInput struct {
	Status    entity.AccessStatus
	Reason    string
	ChangedBy string
}

// --- Output DTOs ---

// Pagination describes an offset page.
type Pagination struct {
	Total int
	Page  int
	Limit int
	Pages int
}

// ListUsersOutput is one page of users.
type ListUsersOutput struct {
	Users      []*entity.User
	Pagination Pagination
}

// AccessChangeOutput reports an access status transition.
type AccessChangeOutput struct {
	PreviousStatus entity.AccessStatus
	NewStatus      entity.AccessStatus
}

// UserUsecase defines the interface for user administration.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	ChangeAccess(ctx context.Context, id string, input ChangeAccessInput) (*AccessChangeOutput, error)
}
