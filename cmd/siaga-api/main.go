package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/siagaid/siaga-api/internal/api/http"
	"github.com/siagaid/siaga-api/internal/assess"
	"github.com/siagaid/siaga-api/internal/auth"
	"github.com/siagaid/siaga-api/internal/catalog"
	"github.com/siagaid/siaga-api/internal/chat"
	"github.com/siagaid/siaga-api/internal/config"
	"github.com/siagaid/siaga-api/internal/store"
	"github.com/siagaid/siaga-api/internal/weather"
	"github.com/siagaid/siaga-api/internal/weather/bmkg"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.BMKGTimeout,
	}

	// Reference data, loaded once and read-only from here on.
	cat := catalog.Load()
	log.Printf("loaded %d cities, %d risk zones, %d evacuation points",
		len(cat.Cities()), len(cat.Zones()), len(cat.Points()))

	// Feed service over the upstream client.
	weatherSvc := weather.NewService(bmkg.NewClient(httpClient))

	// Document store; without a configured URI the API serves from memory
	// and report/user data does not survive restarts.
	var (
		reports store.ReportStore
		users   store.UserStore
	)
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		mongoStore, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		cancel()
		if err != nil {
			log.Printf("mongodb connection failed, using in-memory store: %v", err)
			reports = store.NewMemoryReports()
			users = store.NewMemoryUsers()
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = mongoStore.Close(shutdownCtx)
			}()
			reports = mongoStore.Reports()
			users = mongoStore.Users()
		}
	} else {
		log.Println("MONGODB_URI not set, using in-memory store")
		reports = store.NewMemoryReports()
		users = store.NewMemoryUsers()
	}

	// Session/identity gate.
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	verifier := auth.NewGoogleVerifier(httpClient, cfg.GoogleClientID)
	authSvc := auth.NewService(verifier, users, tokens)

	operators, err := auth.NewOperatorTable(map[string][2]string{
		"admin":    {cfg.AdminPassword, "admin"},
		"operator": {cfg.OperatorPassword, "operator"},
	})
	if err != nil {
		log.Fatalf("failed to build operator table: %v", err)
	}

	server := &httpapi.Server{
		Catalog:     cat,
		Weather:     weatherSvc,
		Auth:        authSvc,
		Operators:   operators,
		Reports:     reports,
		Users:       users,
		Chat:        chat.NewResponder(cat, weatherSvc),
		Assess:      assess.NewGeminiClassifier(httpClient, cfg.GeminiAPIKey),
		AdminSecret: cfg.AdminSecret,
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "siaga-api",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "siaga-api",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, server)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
