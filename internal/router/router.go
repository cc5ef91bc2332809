package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing
	"github.com/redis/go-redis/v9"

	"github.com/bungalowparadise/storefront/internal/config"
	"github.com/bungalowparadise/storefront/internal/handler"
	"github.com/bungalowparadise/storefront/internal/middleware"
)

// Handlers bundles every handler the storefront registers.  main constructs
// the set once and passes it here.
type Handlers struct {
	Rooms        *handler.RoomHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Reservations *handler.ReservationHandler
	Card         *handler.CardHandler
	Reviews      *handler.ReviewHandler
	Chat         *handler.ChatHandler
}

// RegisterRoutes registers routes that do not require authentication.
// The health check serves load balancers and the review list stays public
// so prospective guests can read reviews before signing in; it sits behind
// the response cache since the content is identical for everyone.
func RegisterRoutes(e *echo.Echo, h Handlers, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/api/reviews", h.Reviews.List, middleware.ResponseCache(cacheCfg, rdb))
}

// RegisterAPI registers the authenticated surface under /api.  Every route
// in the group runs the session middleware, which verifies the auth
// service's token and places the guest identity on the context, followed by
// the token bucket rate limiter.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	api := e.Group("/api")
	api.Use(middleware.Session(jwtSecret))
	api.Use(middleware.RateLimit(rlCfg, rdb))

	// Room browsing with price, type and stay narrowing.
	api.GET("/room", h.Rooms.List)

	// Cart operations.
	api.GET("/cart", h.Cart.Get)
	api.POST("/cart/items", h.Cart.AddItem)
	api.DELETE("/cart/items/:index", h.Cart.RemoveItem)
	api.DELETE("/cart", h.Cart.Clear)

	// Checkout flow.
	api.POST("/checkout/session", h.Checkout.Begin)
	api.GET("/checkout/session/:id", h.Checkout.Get)
	api.POST("/checkout/session/:id/advance", h.Checkout.Advance)
	api.POST("/checkout/session/:id/confirm", h.Checkout.Confirm)

	// Reservation review and cancellation.
	api.GET("/reservations", h.Reservations.List)
	api.PUT("/reservations/:id/cancel", h.Reservations.Cancel)

	// Stored payment instrument (always masked on this surface).
	api.GET("/card", h.Card.Get)

	// Guest reviews.
	api.POST("/reviews", h.Reviews.Create)

	// Concierge assistant relay.
	api.POST("/chat", h.Chat.Stream)
}
