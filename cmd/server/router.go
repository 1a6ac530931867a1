package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/movie-api/internal/api"
	apiMiddleware "github.com/phrazzld/movie-api/internal/api/middleware"
)

const (
	limiterCleanupInterval = time.Minute
	limiterIdleTimeout     = 10 * time.Minute

	// MsgTooManyRequests is sent with 429 responses.
	MsgTooManyRequests = "Demasiadas solicitudes"
)

// setupRouter creates the router with all middleware and routes.
// ctx bounds background work started for the router, such as limiter cleanup.
func (app *application) setupRouter(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if app.config.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)

	if app.config.Metrics.Enabled {
		metrics := apiMiddleware.NewMetrics()
		r.Use(metrics.Instrument)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(app.gateway, app.logger))

	r.Group(func(r chi.Router) {
		if app.config.RateLimit.Enabled {
			limiter := apiMiddleware.NewRateLimiter(
				app.config.RateLimit.RequestsPerSecond,
				app.config.RateLimit.Burst,
				func(w http.ResponseWriter, req *http.Request) {
					app.errors.Handle(w, req, api.NewHTTPError(http.StatusTooManyRequests, MsgTooManyRequests, nil))
				},
				app.logger,
			)
			limiter.StartCleanup(ctx, limiterCleanupInterval, limiterIdleTimeout)
			r.Use(limiter.Handler)
		}

		movies := api.NewMovieHandler(app.movieStore, app.logger)
		api.Mount(r, api.MovieRoutes(movies), api.NewPipeline(app.errors, app.logger), app.errors)
	})

	return r
}
