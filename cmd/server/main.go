package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/booking"
	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/config"
	"github.com/iliyamo/hotel-booking-gateway/internal/guest"
	"github.com/iliyamo/hotel-booking-gateway/internal/handler"
	"github.com/iliyamo/hotel-booking-gateway/internal/inventory"
	"github.com/iliyamo/hotel-booking-gateway/internal/middleware"
	"github.com/iliyamo/hotel-booking-gateway/internal/queue"
	"github.com/iliyamo/hotel-booking-gateway/internal/router"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

func main() {
	// Load a .env file when present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Redis is optional: without it caching and rate limiting pass
	// through and the session token falls back to the file store.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	var store session.Store = &session.FileStore{Path: cfg.TokenFile}
	if cfg.SessionStore == "redis" && rdb != nil {
		store = &session.RedisStore{Client: rdb, Key: "session:token"}
	}
	sess := session.New(store)

	// The client clears the session on any upstream 401 (implicit
	// logout); subsequent protected calls are then rejected locally.
	api := client.New(cfg.APIBaseURL, sess, sess.Clear)

	resolveRoles := func(ctx context.Context) {
		sess.ResolveRoles(ctx, func(ctx context.Context) ([]string, error) {
			p, err := api.Profile(ctx)
			if err != nil {
				return nil, err
			}
			return p.Roles, nil
		})
	}
	if sess.Authenticated() {
		// A token survived the restart; resolve its roles in the background.
		go resolveRoles(context.Background())
	}

	events := queue.NewPublisher()
	if !events.Enabled() {
		log.Printf("no message broker configured; lifecycle events disabled")
	}

	bookings := booking.NewService(api, sess, events)
	roster := guest.NewService(api, sess)
	inv := inventory.NewService(api, sess)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(api, sess))
	router.RegisterPublic(e, handler.NewSearchHandler(api), middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterUser(e, sess, handler.NewBookingHandler(bookings), handler.NewGuestHandler(roster), handler.NewProfileHandler(api))
	router.RegisterAdmin(e, sess, resolveRoles, handler.NewAdminHotelHandler(api), handler.NewAdminRoomHandler(api), handler.NewAdminInventoryHandler(inv))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, upstream=%s)", addr, cfg.Env, cfg.APIBaseURL)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
