package context

import (
	"fitsaga/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the caller verified by the auth middleware.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(keyIdentity), identity)
}

// GetIdentity returns the verified caller. It reports false on public routes.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(string(keyIdentity)).(*service.Identity)

	return identity, ok && identity != nil
}
