// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user document does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when creating a user whose ID is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrNotAClient is returned when a client operation targets a user without a client profile.
	ErrNotAClient = errors.New("user is not a client")
)

// UserFilter narrows user listings. Empty fields match everything.
type UserFilter struct {
	Role         entity.Role
	AccessStatus entity.AccessStatus
}

// ClientQuery selects a cursor page of clients.
type ClientQuery struct {
	PageSize         int
	LastID           string // Document ID to start after.
	AccessStatus     entity.AccessStatus
	SubscriptionTier string
	MinCredits       *int
	Search           string
}

// ClientPage is one page of clients plus the cursor for the next page.
type ClientPage struct {
	Clients     []*entity.User
	HasMore     bool
	LastVisible string
}

// ClientFieldUpdates lists the client fields that may be written in bulk. Nil fields are left untouched.
type ClientFieldUpdates struct {
	AccessStatus     *entity.AccessStatus
	SubscriptionTier *string
	Credits          *int
	GymCredits       *int
	IntervalCredits  *int
	FitnessGoals     []string
	Address          *string
	PhoneNumber      *string
	FullName         *string
}

// IsEmpty reports whether no field is set.
func (u ClientFieldUpdates) IsEmpty() bool {
	return u.AccessStatus == nil && u.SubscriptionTier == nil && u.Credits == nil &&
		u.GymCredits == nil && u.IntervalCredits == nil && u.FitnessGoals == nil &&
		u.Address == nil && u.PhoneNumber == nil && u.FullName == nil
}

// UserField names a group of user attributes written together by UpdateUser.
type UserField int

const (
	// UserIdentityFields covers email, fullName, phoneNumber, photoUrl and disabled.
	UserIdentityFields UserField = iota + 1
	// UserAccessFields covers accessStatus and disabled.
	UserAccessFields
	// UserRoleFields covers role, accessStatus and the role profiles, which it replaces whole.
	UserRoleFields
	// UserClientDetailFields covers the client address, fitness goals and notification preferences.
	UserClientDetailFields
	// UserClientCreditFields covers the client balances, unlimited flag and subscriptionTier.
	UserClientCreditFields
	// UserClientSubscriptionFields covers the client subscription, subscriptionTier and subscriptionExpiry.
	UserClientSubscriptionFields
)

// CreditAllotmentWrite is one client balance written by the credit reset.
type CreditAllotmentWrite struct {
	ClientID  string
	Allotment entity.CreditAllotment
}

// CreditChange reports a client balance before and after an adjustment.
type CreditChange struct {
	Previous entity.ClientProfile
	Current  entity.ClientProfile
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by document ID.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsers returns all users matching the filter, ordered by creation time descending.
	ListUsers(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// ListClients returns one cursor page of clients.
	ListClients(ctx context.Context, query ClientQuery) (*ClientPage, error)

	// CreateUser persists a new user under its ID.
	CreateUser(ctx context.Context, user *entity.User) error

	// UpdateUser writes the named field groups of user plus updatedAt. Fields outside the groups
	// keep their stored values, so concurrent credit writes are not undone.
	UpdateUser(ctx context.Context, user *entity.User, fields ...UserField) error

	// UpdateClients applies the same field updates to several clients in one batch.
	UpdateClients(ctx context.Context, ids []string, updates ClientFieldUpdates) error

	// DeleteUser removes a user document.
	DeleteUser(ctx context.Context, id string) error

	// DeleteUsers removes several user documents in one batch.
	DeleteUsers(ctx context.Context, ids []string) error

	// DeleteInstructor removes an instructor and, in the same batch, clears the instructor
	// from their sessions and activities.
	DeleteInstructor(ctx context.Context, id string) error

	// AdjustClientCredits atomically adds delta to a client's credits, clamping at zero.
	AdjustClientCredits(ctx context.Context, id string, delta int) (*CreditChange, error)

	// SetClientBalances atomically sets gym and interval credits; credits becomes their sum.
	SetClientBalances(ctx context.Context, id string, gymCredits, intervalCredits int) (*CreditChange, error)

	// ApplyCreditAllotments writes the allotments in a single batch commit.
	ApplyCreditAllotments(ctx context.Context, writes []CreditAllotmentWrite, resetAt time.Time) error

	// RemoveFCMTokens drops push tokens from a user.
	RemoveFCMTokens(ctx context.Context, id string, tokens []string) error
}
