package authmw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gifthub/gifthub/internal/service"
	"github.com/gifthub/gifthub/internal/session"
)

// RequireSession loads the caller's server-side session and validates the
// token bound to it. Requests without a live session get a 401.
func RequireSession(store session.Store, tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			claims, err := tokens.Parse(sess.Token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("sessionID", cookie.Value)
			c.Set("userID", userID)
			c.Set("username", sess.Username)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by RequireSession.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get("userID").(uint)
	return id, ok
}
