package firebase

import (
	"context"
	"testing"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	claims      map[string]any
	claimsUID   string
	token       *auth.Token
	verifyErr   error
	updateCalls int
}

func (f *fakeAuthClient) CreateUser(context.Context, *auth.UserToCreate) (*auth.UserRecord, error) {
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-1"}}, nil
}

func (f *fakeAuthClient) UpdateUser(context.Context, string, *auth.UserToUpdate) (*auth.UserRecord, error) {
	f.updateCalls++

	return &auth.UserRecord{UserInfo: &auth.UserInfo{}}, nil
}

func (f *fakeAuthClient) DeleteUser(context.Context, string) error {
	return nil
}

func (f *fakeAuthClient) SetCustomUserClaims(_ context.Context, uid string, claims map[string]any) error {
	f.claimsUID = uid
	f.claims = claims

	return nil
}

func (f *fakeAuthClient) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func TestIdentityProvider_CreateIdentity_ReturnsUID(t *testing.T) {
	provider := &identityProvider{client: &fakeAuthClient{}}

	uid, err := provider.CreateIdentity(context.Background(), &service.NewIdentity{Email: "a@b.c", DisplayName: "A"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
}

func TestIdentityProvider_UpdateIdentity_EmptyUpdateSkipsCall(t *testing.T) {
	client := &fakeAuthClient{}
	provider := &identityProvider{client: client}

	require.NoError(t, provider.UpdateIdentity(context.Background(), "uid-1", service.IdentityUpdate{}))
	assert.Zero(t, client.updateCalls)

	disabled := true
	require.NoError(t, provider.UpdateIdentity(context.Background(), "uid-1", service.IdentityUpdate{Disabled: &disabled}))
	assert.Equal(t, 1, client.updateCalls)
}

func TestIdentityProvider_SetRole_WritesRoleClaim(t *testing.T) {
	client := &fakeAuthClient{}
	provider := &identityProvider{client: client}

	require.NoError(t, provider.SetRole(context.Background(), "uid-1", entity.RoleInstructor))
	assert.Equal(t, "uid-1", client.claimsUID)
	assert.Equal(t, map[string]any{RoleClaim: "instructor"}, client.claims)
}

func TestIdentityProvider_VerifyIDToken_ReadsClaims(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{
		UID:    "admin-1",
		Claims: map[string]any{"role": "admin", "email": "admin@fitsaga.com"},
	}}
	provider := &identityProvider{client: client}

	identity, err := provider.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", identity.UID)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.Equal(t, "admin@fitsaga.com", identity.Email)
}

func TestIdentityProvider_VerifyIDToken_Invalid(t *testing.T) {
	provider := &identityProvider{client: &fakeAuthClient{verifyErr: errors.New("expired")}}

	_, err := provider.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, service.ErrInvalidIDToken))
}
