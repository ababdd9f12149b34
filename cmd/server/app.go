package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/floravend/bloom-api/internal/config"
	"github.com/floravend/bloom-api/internal/platform/postgres"
	"github.com/floravend/bloom-api/internal/platform/uploads"
	"github.com/floravend/bloom-api/internal/service"
	"github.com/floravend/bloom-api/internal/service/auth"
	"github.com/floravend/bloom-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	flowerStore   store.FlowerStore
	purchaseStore store.PurchaseStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	cartService      service.CartService
	checkoutService  service.CheckoutService

	// File storage for profile pictures
	fileStore *uploads.FileStore
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.flowerStore = postgres.NewPostgresFlowerStore(db, logger)
	app.purchaseStore = postgres.NewPostgresPurchaseStore(db, logger)

	// Initialize the profile picture store
	app.fileStore = uploads.NewFileStore(cfg.Uploads.Dir)
	logger.Info("Upload store initialized", "dir", cfg.Uploads.Dir)

	// Initialize cart service
	app.cartService, err = service.NewCartService(app.flowerStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %w", err)
	}

	// Initialize checkout service
	app.checkoutService, err = service.NewCheckoutService(
		app.db,
		app.flowerStore,
		app.purchaseStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
