package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/usecase/auth"
)

// UserIDKey is the echo context key holding the authenticated user's id
const UserIDKey = "user_id"

// RequireAuth rejects requests without a valid bearer token. On success the
// caller's user id is stored on the context under UserIDKey.
func RequireAuth(useCase auth.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"detail": "Authentication credentials were not provided.",
				})
			}

			userID, err := useCase.VerifyToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"detail": "Invalid token.",
				})
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated user's id stored by RequireAuth
func CurrentUserID(c echo.Context) uint {
	userID, _ := c.Get(UserIDKey).(uint)
	return userID
}
