package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/movie-api/internal/api/shared"
	"github.com/phrazzld/movie-api/internal/platform/logger"
	"github.com/phrazzld/movie-api/internal/validation"
)

// HandlerFunc handles a request whose input already passed validation.
// A returned error is passed to the ErrorHandler; the handler must not have
// written a response in that case.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, data validation.Data) error

// Pipeline runs validation rules in front of a HandlerFunc.
type Pipeline struct {
	errors *ErrorHandler
	logger *slog.Logger
}

// NewPipeline creates a new Pipeline
func NewPipeline(errors *ErrorHandler, logger *slog.Logger) *Pipeline {
	if errors == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("errors cannot be nil for Pipeline")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Pipeline")
	}
	return &Pipeline{
		errors: errors,
		logger: logger.With(slog.String("component", "pipeline")),
	}
}

// Wrap returns an http.HandlerFunc that collects the request input, runs
// rules over it and either answers 422 or calls next with the sanitized data.
func (p *Pipeline) Wrap(rules validation.RuleSet, next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := shared.DecodeBody(w, r)
		if err != nil {
			p.errors.Handle(w, r, decodeError(err))
			return
		}

		data, errs := rules.Run(validation.Input{Body: body, Params: urlParams(r)})
		if len(errs) > 0 {
			logger.FromContextOrDefault(r.Context(), p.logger).Debug("request failed validation",
				slog.String("path", r.URL.Path),
				slog.Any("errors", errs))
			shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
				OK:     okFalse,
				Status: http.StatusUnprocessableEntity,
				Errors: errs,
			})
			return
		}

		if err := next(w, r, data); err != nil {
			p.errors.Handle(w, r, err)
		}
	}
}

// urlParams copies the path parameters chi matched for this request.
func urlParams(r *http.Request) map[string]string {
	params := map[string]string{}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
