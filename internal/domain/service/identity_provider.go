package service

import (
	"context"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/errors"
)

var (
	// ErrIdentityNotFound is returned when the auth provider has no such user.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrIdentityEmailExists is returned when the email is already registered with the auth provider.
	ErrIdentityEmailExists = errors.New("identity email already exists")
	// ErrInvalidIDToken is returned when an ID token cannot be verified.
	ErrInvalidIDToken = errors.New("invalid id token")
)

// NewIdentity describes an auth account to create.
type NewIdentity struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
	Disabled    bool
}

// IdentityUpdate lists auth account fields to change. Nil fields are left untouched.
type IdentityUpdate struct {
	Email       *string
	DisplayName *string
	PhoneNumber *string
	Disabled    *bool
}

// IsEmpty reports whether no field is set.
func (u IdentityUpdate) IsEmpty() bool {
	return u.Email == nil && u.DisplayName == nil && u.PhoneNumber == nil && u.Disabled == nil
}

// Identity is the verified caller behind an ID token.
type Identity struct {
	UID   string
	Email string
	Role  entity.Role
}

// IdentityProvider manages accounts in the external auth provider.
type IdentityProvider interface {
	// CreateIdentity creates an auth account and returns its UID.
	CreateIdentity(ctx context.Context, identity *NewIdentity) (string, error)

	// UpdateIdentity changes fields of an auth account.
	UpdateIdentity(ctx context.Context, uid string, update IdentityUpdate) error

	// DeleteIdentity removes an auth account.
	DeleteIdentity(ctx context.Context, uid string) error

	// SetRole stores the role as a custom claim.
	SetRole(ctx context.Context, uid string, role entity.Role) error

	// VerifyIDToken checks an ID token and returns the caller.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
