package router // package router defines how HTTP routes are registered for the gateway

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/handler"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication surface.  Login, signup and
// the session info endpoint are open; logout is open too because
// clearing an absent session is harmless.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/signup", a.Signup)
	g.POST("/admin-signup", a.AdminSignup)
	g.POST("/logout", a.Logout)
	g.GET("/session", a.SessionInfo)
}

// RegisterPublic registers the unauthenticated browse endpoints.  The
// search route takes the response-cache middleware so repeated identical
// queries do not each hit the remote service; cacheMW may be a
// pass-through when Redis is absent.
func RegisterPublic(e *echo.Echo, s *handler.SearchHandler, cacheMW echo.MiddlewareFunc) {
	e.GET("/v1/hotels/search", s.SearchHotels, cacheMW)
	e.GET("/v1/hotels/:id", s.HotelInfo)
}

// RegisterUser registers the authenticated customer surface: bookings,
// the guest roster and the profile.  All routes are guarded by the
// session middleware, which rejects locally when no token is present.
func RegisterUser(e *echo.Echo, sess *session.Session, b *handler.BookingHandler, g *handler.GuestHandler, p *handler.ProfileHandler) {
	auth := e.Group("/v1")
	auth.Use(middleware.RequireSession(sess))

	auth.POST("/bookings", b.Init)
	auth.GET("/my-bookings", b.List)
	auth.GET("/bookings/:id", b.Detail)
	auth.GET("/bookings/:id/status", b.Status)
	auth.POST("/bookings/:id/guests", b.AddGuests)
	auth.POST("/bookings/:id/payments", b.Pay)
	auth.POST("/bookings/:id/cancel", b.Cancel)

	auth.GET("/guests", g.List)
	auth.POST("/guests", g.Create)
	auth.PUT("/guests/:id", g.Update)
	auth.DELETE("/guests/:id", g.Delete)

	auth.GET("/profile", p.Get)
	auth.PATCH("/profile", p.Patch)
}

// RegisterAdmin registers the manager-only surface.  The role middleware
// resolves roles synchronously when the check has not completed yet, so
// a freshly logged-in manager is not bounced with a premature 403.
func RegisterAdmin(e *echo.Echo, sess *session.Session, resolve middleware.RoleResolver, h *handler.AdminHotelHandler, r *handler.AdminRoomHandler, inv *handler.AdminInventoryHandler) {
	admin := e.Group("/v1/admin")
	admin.Use(middleware.RequireSession(sess))
	admin.Use(middleware.RequireManager(sess, resolve))

	admin.GET("/hotels", h.List)
	admin.POST("/hotels", h.Create)
	admin.GET("/hotels/:id", h.Detail)
	admin.PUT("/hotels/:id", h.Update)
	admin.PATCH("/hotels/:id/activate", h.Activate)
	admin.DELETE("/hotels/:id", h.Delete)

	admin.GET("/hotels/:id/rooms", r.List)
	admin.POST("/hotels/:id/rooms", r.Create)
	admin.GET("/hotels/:id/rooms/:roomId", r.Get)
	admin.PUT("/hotels/:id/rooms/:roomId", r.Update)
	admin.DELETE("/hotels/:id/rooms/:roomId", r.Delete)

	admin.GET("/inventory/rooms/:roomId", inv.List)
	admin.PATCH("/inventory/rooms/:roomId", inv.Patch)
}
