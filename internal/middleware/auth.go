package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/service"
)

const (
	sessionHeader = "X-Session-Id"

	// Requests with no token and no session header still get a cart.
	guestSessionID = "guest"
)

// Session resolves who is shopping: a bearer token wins, then the session
// header, then the shared guest session. Signed-in shoppers key their cart
// and checkpoint by email so both survive the redirect round trip even if
// the client loses its header.
func Session(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if auth := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
				if user, err := authService.ParseToken(strings.TrimPrefix(auth, "Bearer ")); err == nil {
					c.Set("user", user)
					c.Set("session_id", user.Email)
					return next(c)
				}
			}

			sessionID := c.Request().Header.Get(sessionHeader)
			if sessionID == "" {
				sessionID = guestSessionID
			}
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	sessionID, _ := c.Get("session_id").(string)
	return sessionID
}

func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get("user").(*model.User)
	return user
}
