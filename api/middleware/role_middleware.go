package middleware

import (
	"net/http"

	"github.com/rajib3777/academia/internal/entity"

	"github.com/labstack/echo/v4"
)

// RequireRole passes only when the authenticated user holds the given role.
// It checks the user loaded by RequireAuth, not the token claims, so role
// changes take effect without waiting for tokens to expire.
func RequireRole(role entity.RoleName) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok || !user.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
