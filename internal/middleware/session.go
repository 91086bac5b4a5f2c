package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// RequireSession returns a middleware that rejects requests when no
// session token is present.  The check is purely local: after an
// implicit logout (any upstream 401 clears the session) subsequent
// protected calls fail here without a network round trip.  This
// middleware should wrap every route that relays an authenticated call
// to the remote booking service.
func RequireSession(sess *session.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sess.Authenticated() {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			return next(c)
		}
	}
}
