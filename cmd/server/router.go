package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/floravend/bloom-api/internal/api"
	apiMiddleware "github.com/floravend/bloom-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.fileStore,
	)
	flowerHandler := api.NewFlowerHandler(app.flowerStore)
	cartHandler := api.NewCartHandler(app.cartService)
	purchaseHandler := api.NewPurchaseHandler(app.checkoutService, app.purchaseStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Public endpoints
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Get("/flowers", flowerHandler.ListFlowers)
	r.Post("/flowers", flowerHandler.CreateFlower)
	r.Post("/cart/items", cartHandler.AddItem)
	r.Get("/cart/items", cartHandler.GetItems)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/profile", authHandler.Profile)
		r.Post("/purchased", purchaseHandler.Purchase)
		r.Get("/purchased", purchaseHandler.ListPurchased)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
