package firebase

import (
	"context"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"firebase.google.com/go/v4/auth"
)

// RoleClaim is the custom claim that carries a user's role.
const RoleClaim = "role"

// authClient is the subset of *auth.Client used by the identity provider.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]any) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityProvider struct {
	client authClient
}

// NewIdentityProvider creates an IdentityProvider backed by Firebase Auth.
func NewIdentityProvider(client *auth.Client) service.IdentityProvider {
	return &identityProvider{client: client}
}

func (p *identityProvider) CreateIdentity(ctx context.Context, identity *service.NewIdentity) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(identity.Email).
		DisplayName(identity.DisplayName).
		Disabled(identity.Disabled)
	if identity.Password != "" {
		params = params.Password(identity.Password)
	}
	if identity.PhoneNumber != "" {
		params = params.PhoneNumber(identity.PhoneNumber)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", service.ErrIdentityEmailExists
		}

		return "", errors.Wrap(err, "failed to create auth user")
	}

	return record.UID, nil
}

func (p *identityProvider) UpdateIdentity(ctx context.Context, uid string, update service.IdentityUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	params := &auth.UserToUpdate{}
	if update.Email != nil {
		params = params.Email(*update.Email)
	}
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
	}
	if update.PhoneNumber != nil {
		params = params.PhoneNumber(*update.PhoneNumber)
	}
	if update.Disabled != nil {
		params = params.Disabled(*update.Disabled)
	}

	if _, err := p.client.UpdateUser(ctx, uid, params); err != nil {
		return p.translate(err, "failed to update auth user")
	}

	return nil
}

func (p *identityProvider) DeleteIdentity(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return p.translate(err, "failed to delete auth user")
	}

	return nil
}

func (p *identityProvider) SetRole(ctx context.Context, uid string, role entity.Role) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, map[string]any{RoleClaim: role.String()}); err != nil {
		return p.translate(err, "failed to set role claim")
	}

	return nil
}

func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Join(service.ErrInvalidIDToken, err)
	}

	identity := &service.Identity{UID: token.UID}
	if role, ok := token.Claims[RoleClaim].(string); ok {
		identity.Role = entity.Role(role)
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}

func (p *identityProvider) translate(err error, message string) error {
	if auth.IsUserNotFound(err) {
		return service.ErrIdentityNotFound
	}

	return errors.Wrap(err, message)
}
