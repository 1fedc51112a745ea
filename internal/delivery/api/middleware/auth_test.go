package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/service"
	mockSvc "fitsaga/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAuthMiddleware(t *testing.T, cronSecret string) (*AuthMiddleware, *mockSvc.MockIdentityProvider) {
	identity := mockSvc.NewMockIdentityProvider(t)
	cfg := &config.Config{}
	cfg.Cron.Secret = cronSecret

	return NewAuthMiddleware(AuthMiddlewareParams{
		Identity: identity,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), identity
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		m, _ := createTestAuthMiddleware(t, "")
		c, rec := newAuthContext("")

		_ = m.Authenticate(noContent)(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _ := createTestAuthMiddleware(t, "")
		c, rec := newAuthContext("Basic YWRtaW46YWRtaW4=")

		_ = m.Authenticate(noContent)(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		m, identity := createTestAuthMiddleware(t, "")
		identity.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, errors.New("token expired"))
		c, rec := newAuthContext("Bearer expired")

		_ = m.Authenticate(noContent)(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("verified caller is stored", func(t *testing.T) {
		m, identity := createTestAuthMiddleware(t, "")
		identity.EXPECT().VerifyIDToken(mock.Anything, "good").
			Return(&service.Identity{UID: "admin-1", Role: entity.RoleAdmin}, nil)
		c, rec := newAuthContext("Bearer good")

		_ = m.Authenticate(noContent)(c)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		actor, found := GetActor(c)
		assert.True(t, found)
		assert.Equal(t, "admin-1", actor.ID)
		assert.Equal(t, entity.RoleAdmin, actor.Role)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := createTestAuthMiddleware(t, "")
	adminOnly := m.RequireRole(entity.RoleAdmin)(noContent)

	c, rec := newAuthContext("")
	_ = adminOnly(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newAuthContext("")
	deliverycontext.SetIdentity(c, &service.Identity{UID: "i1", Role: entity.RoleInstructor})
	_ = adminOnly(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthContext("")
	deliverycontext.SetIdentity(c, &service.Identity{UID: "a1", Role: entity.RoleAdmin})
	_ = adminOnly(c)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_CronSecret(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		authorization string
		want          int
	}{
		{name: "matching secret", secret: "s3cret", authorization: "Bearer s3cret", want: http.StatusNoContent},
		{name: "wrong secret", secret: "s3cret", authorization: "Bearer guess", want: http.StatusUnauthorized},
		{name: "no header", secret: "s3cret", want: http.StatusUnauthorized},
		{name: "unset secret rejects everything", secret: "", authorization: "Bearer ", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := createTestAuthMiddleware(t, tt.secret)
			c, rec := newAuthContext(tt.authorization)

			_ = m.CronSecret(noContent)(c)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAdminID(t *testing.T) {
	c, _ := newAuthContext("")
	assert.Equal(t, constants.SystemActor, AdminID(c))

	c.Request().Header.Set(constants.HeaderAdminID, "admin-header")
	assert.Equal(t, "admin-header", AdminID(c))

	deliverycontext.SetIdentity(c, &service.Identity{UID: "admin-token"})
	assert.Equal(t, "admin-token", AdminID(c))
}
