package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// RoleResolver re-resolves the session's role set from the remote
// profile.  Supplied by the composition root so this package does not
// depend on the remote client directly.
type RoleResolver func(ctx context.Context)

// RequireManager returns a middleware that enforces the hotel-manager
// role on the admin surface.  When role resolution has not completed yet
// (fresh login, or the startup resolution is still pending) it resolves
// synchronously before deciding, so a manager is never bounced with a
// premature 403 just because the check had not finished.  Requests from
// a resolved non-manager are rejected with 403 Forbidden.
func RequireManager(sess *session.Session, resolve RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sess.Authenticated() {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			if _, resolved := sess.Roles(); !resolved && resolve != nil {
				resolve(c.Request().Context())
			}
			if !sess.IsManager() {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
