package middleware

import (
	"net/http"
	"strings"

	"github.com/rajib3777/academia/internal/repository"
	"github.com/rajib3777/academia/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests with a bearer access token. The
// token only carries the user ID; the user row is loaded on every request
// so revoked or deactivated accounts lose access immediately.
type AuthMiddleware struct {
	JWT   *utils.JWTManager
	Users repository.UserRepository
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil || m.Users == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		token := extractBearerToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		claims, err := m.JWT.ParseAccessToken(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		user, err := m.Users.FindByID(c.Request().Context(), userID)
		if err != nil || user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		SetAuthContext(c, userID, user)
		return next(c)
	}
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
