// Package middleware holds the API's authentication and error middleware.
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"fitsaga/config"
	"fitsaga/internal/delivery/api/response"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Identity service.IdentityProvider
	Config   *config.Config
	Logger   *slog.Logger
}

// AuthMiddleware verifies Firebase ID tokens and the cron shared secret.
type AuthMiddleware struct {
	identity   service.IdentityProvider
	cronSecret string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identity:   params.Identity,
		cronSecret: params.Config.Cron.Secret,
		logger:     params.Logger,
	}
}

// Authenticate verifies the bearer ID token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must be a Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.identity.VerifyIDToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("ID token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole rejects callers without the given role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}
			if identity.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// CronSecret accepts only requests bearing the configured cron secret.
// An empty secret rejects every request.
func (m *AuthMiddleware) CronSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok || m.cronSecret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.cronSecret)) != 1 {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// GetActor returns the authenticated caller as a use case actor.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{ID: identity.UID, Role: identity.Role}, true
}

// AdminID names who performed an admin action: the caller, else the X-Admin-Id header, else system.
func AdminID(c echo.Context) string {
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		return identity.UID
	}
	if id := c.Request().Header.Get(constants.HeaderAdminID); id != "" {
		return id
	}

	return constants.SystemActor
}
