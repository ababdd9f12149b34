// Package main implements the entry point for the Bloom API server,
// the flower shop backend: accounts, catalog, carts and purchases.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/floravend/bloom-api/internal/config"
	"github.com/floravend/bloom-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations (up, down, status) and exit")
	migrationsDir := flag.String("migrations-dir", "migrations", "directory containing goose migrations")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Establish the database connection
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Migration mode: run the requested goose command and exit
	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd, *migrationsDir); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		slog.Info("Migration completed", "command", *migrateCmd)
		if err := db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
		return
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
