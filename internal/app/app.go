package app

import (
	"time"

	"steiger-backend/internal/auth"
	"steiger-backend/internal/catalog"
	"steiger-backend/internal/config"
	"steiger-backend/internal/database"
	"steiger-backend/internal/health"
	"steiger-backend/internal/middleware"
	"steiger-backend/internal/payments"
	"steiger-backend/internal/reservation"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route registration.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	// Stripe webhook — mounted before the session middleware so the raw body
	// and signature header reach the handler untouched.
	stripeWebhook := &payments.WebhookHandler{WebhookSecret: cfg.StripeWebhookSecret}
	app.Post("/api/v1/stripe/webhook", stripeWebhook.HandleWebhook)

	// Session (Redis)
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	// Tracing + route logger
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	// Database
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}
	if db != nil {
		stripeWebhook.DB = db
	}

	// Health
	healthHandlers := &health.Handlers{Rdb: rdb}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			healthHandlers.DB = sqlDB
		}
	}
	app.Get("/health/json", healthHandlers.JSON)

	// Catalog (static dataset, no auth)
	repo := catalog.NewMemoryRepository()
	catalogHandlers := &catalog.Handlers{Repo: repo}
	projectGroup := app.Group("/api/v1/projects")
	projectGroup.Get("/", catalogHandlers.ListProjects)
	projectGroup.Get("/:slug", catalogHandlers.GetProject)
	projectGroup.Get("/:slug/units", catalogHandlers.ListUnits)

	// Auth
	var userStore auth.UserStore
	if db != nil {
		userStore = &auth.GormUserStore{DB: db}
	}
	authHandlers := &auth.Handlers{Users: userStore, Rdb: rdb, Config: sessionCfg}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Post("/register", authHandlers.Register)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// Reservation wizard
	if db != nil {
		drafts := &reservation.DraftStore{
			Rdb: rdb,
			TTL: time.Duration(cfg.ReservationTTLHours) * time.Hour,
		}
		resHandlers := &reservation.Handlers{
			Repo:       repo,
			Drafts:     drafts,
			Service:    &reservation.Service{DB: db},
			Intents:    &payments.StripeCreator{SecretKey: cfg.StripeSecretKey},
			SessionCfg: sessionCfg,
		}
		resGroup := app.Group("/api/v1/reservations")
		resGroup.Get("/", middleware.RequireAuth(), resHandlers.MyReservations)
		resGroup.Get("/confirmation/:intent_id", resHandlers.Confirmation)
		resGroup.Post("/:slug/start", resHandlers.Start)
		resGroup.Get("/:slug", resHandlers.State)
		resGroup.Post("/:slug/select-unit", resHandlers.SelectUnit)
		resGroup.Post("/:slug/advance", resHandlers.Advance)
		resGroup.Post("/:slug/back", resHandlers.Back)
		resGroup.Put("/:slug/customer-info", resHandlers.CustomerInfo)
		resGroup.Put("/:slug/terms", resHandlers.Terms)
		resGroup.Post("/:slug/payment-intent", resHandlers.PaymentIntent)
		resGroup.Post("/:slug/confirm", resHandlers.Confirm)
	}

	return app, db, rdb, nil
}
