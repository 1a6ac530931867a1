package main

import (
	"log/slog"

	"github.com/phrazzld/movie-api/internal/api"
	"github.com/phrazzld/movie-api/internal/config"
	"github.com/phrazzld/movie-api/internal/platform/database"
	"github.com/phrazzld/movie-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *database.Pool

	gateway    *database.SQLGateway
	movieStore store.MovieStore

	errors *api.ErrorHandler
}

// newApplication builds the application around an open database pool.
// The application owns the pool from here on and closes it in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *database.Pool) *application {
	gateway := pool.Gateway(logger)
	return &application{
		config:     cfg,
		logger:     logger,
		pool:       pool,
		gateway:    gateway,
		movieStore: database.NewSQLMovieStore(gateway, logger),
		errors:     api.NewErrorHandler(logger),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.pool == nil {
		return
	}
	if err := app.pool.Close(); err != nil {
		app.logger.Error("Failed to close database pool", "error", err)
		return
	}
	app.logger.Info("Database pool closed")
}
