package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/bungalowparadise/storefront/internal/booking"
	"github.com/bungalowparadise/storefront/internal/cart"
	"github.com/bungalowparadise/storefront/internal/catalog"
	"github.com/bungalowparadise/storefront/internal/chat"
	"github.com/bungalowparadise/storefront/internal/checkout"
	"github.com/bungalowparadise/storefront/internal/config"
	"github.com/bungalowparadise/storefront/internal/database"
	"github.com/bungalowparadise/storefront/internal/handler"
	"github.com/bungalowparadise/storefront/internal/payment"
	"github.com/bungalowparadise/storefront/internal/queue"
	"github.com/bungalowparadise/storefront/internal/repository"
	"github.com/bungalowparadise/storefront/internal/router"
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	// Redis backs the durable carts, the rate limiter and the response
	// cache. The middleware degrades without it but the cart cannot.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Fatal("redis unavailable: carts require a reachable redis instance")
	}

	// MySQL holds guest reviews, the only locally persisted entity.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}
	defer db.Close()

	cartStore := cart.NewStore(cart.NewRedisStorage(rdb))
	engine := booking.NewClient(cfg.BookingURL)
	vault := payment.NewClient(cfg.CardVaultURL)
	orchestrator := checkout.New(cartStore, engine, vault, queue.PublishBookingConfirmed)

	handlers := router.Handlers{
		Rooms:        handler.NewRoomHandler(catalog.NewClient(cfg.CatalogURL), cartStore),
		Cart:         handler.NewCartHandler(cartStore),
		Checkout:     handler.NewCheckoutHandler(orchestrator),
		Reservations: handler.NewReservationHandler(engine),
		Card:         handler.NewCardHandler(vault),
		Reviews:      handler.NewReviewHandler(repository.NewReviewRepo(db)),
		Chat:         handler.NewChatHandler(chat.NewProxy(cfg.ChatURL)),
	}

	// Consume booking.confirmed events in the background; the consumer
	// reconnects on its own and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, handlers, config.LoadCacheConfig(), rdb)
	router.RegisterAPI(e, handlers, cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
