package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/apperror"
)

// contextKeyUser stores the resolved *User in the Echo context. Other
// plugins read it through GetUser / GetUserID.
const contextKeyUser = "auth_user"

// RequireAuth returns middleware that resolves the bearer token in the
// Authorization header to a user. Requests without a valid token never
// reach the wrapped handler.
func RequireAuth(service AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

			user, err := service.ResolveIdentity(c.Request().Context(), token)
			if err != nil {
				if apperror.SafeCode(err) == http.StatusUnauthorized {
					c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				}
				return err
			}

			c.Set(contextKeyUser, user)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive. Returns "" for any other shape.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// --- Exported getters for other plugins ---

// GetUser returns the authenticated user, or nil if RequireAuth did not run.
func GetUser(c echo.Context) *User {
	user, ok := c.Get(contextKeyUser).(*User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID returns the authenticated user's ID, or 0 if unauthenticated.
func GetUserID(c echo.Context) int64 {
	if user := GetUser(c); user != nil {
		return user.ID
	}
	return 0
}
