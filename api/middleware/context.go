package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajib3777/academia/internal/entity"
)

const (
	contextUserIDKey = "auth_user_id"
	contextUserKey   = "auth_user"
)

func SetAuthContext(c echo.Context, userID uuid.UUID, user *entity.User) {
	c.Set(contextUserIDKey, userID)
	c.Set(contextUserKey, user)
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextUserIDKey)
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func UserFromContext(c echo.Context) (*entity.User, bool) {
	value := c.Get(contextUserKey)
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}
