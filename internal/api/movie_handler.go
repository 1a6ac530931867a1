package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/movie-api/internal/api/shared"
	"github.com/phrazzld/movie-api/internal/domain"
	"github.com/phrazzld/movie-api/internal/platform/logger"
	"github.com/phrazzld/movie-api/internal/store"
	"github.com/phrazzld/movie-api/internal/validation"
)

// MovieHandler handles movie-related HTTP requests.
// Its methods are HandlerFuncs; mount them through a Pipeline.
type MovieHandler struct {
	movies store.MovieStore
	logger *slog.Logger
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movies store.MovieStore, logger *slog.Logger) *MovieHandler {
	if movies == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("movies cannot be nil for MovieHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MovieHandler")
	}
	return &MovieHandler{
		movies: movies,
		logger: logger.With(slog.String("component", "movie_handler")),
	}
}

// Create handles POST /create.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request, data validation.Data) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	title, _ := data.String(validation.FieldTitle)
	year, _ := data.Int(validation.FieldYear)
	review, _ := data.String(validation.FieldReview)
	cover, _ := data.String(validation.FieldCover)

	movie, err := domain.NewMovie(title, year, review, cover)
	if err != nil {
		return fmt.Errorf("building movie: %w", err)
	}

	id, err := h.movies.Create(r.Context(), movie)
	if err != nil {
		return fmt.Errorf("creating movie: %w", err)
	}

	log.Info("movie created", slog.Int64("movie_id", id))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateMovieResponse{
		OK:      okTrue,
		Status:  http.StatusCreated,
		Message: MsgMovieCreated,
		MovieID: id,
	})
	return nil
}

// Show handles GET /movies and GET /movie/{id}. With an id it answers the
// single movie or 404; without one it lists every movie.
func (h *MovieHandler) Show(w http.ResponseWriter, r *http.Request, data validation.Data) error {
	result, err := h.find(r.Context(), data)
	if store.IsNotFoundError(err) {
		respondInvalidID(w, r)
		return nil
	}
	if err != nil {
		return err
	}

	if result.IsSingle() {
		movie, _ := result.Single()
		shared.RespondWithJSON(w, r, http.StatusOK, MovieResponse{
			OK:     okTrue,
			Status: http.StatusOK,
			Movie:  movie,
		})
		return nil
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MovieListResponse{
		OK:     okTrue,
		Status: http.StatusOK,
		Movies: result.Many(),
	})
	return nil
}

func (h *MovieHandler) find(ctx context.Context, data validation.Data) (domain.MovieResult, error) {
	id, ok := data.Int(validation.ParamID)
	if !ok {
		movies, err := h.movies.List(ctx)
		if err != nil {
			return domain.MovieResult{}, fmt.Errorf("listing movies: %w", err)
		}
		return domain.ManyMovies(movies), nil
	}

	movie, err := h.movies.GetByID(ctx, int64(id))
	if err != nil {
		return domain.MovieResult{}, fmt.Errorf("getting movie %d: %w", id, err)
	}
	return domain.SingleMovie(*movie), nil
}

// Edit handles PUT /edit. Submitted fields are merged over the stored row
// and the whole row is written back.
func (h *MovieHandler) Edit(w http.ResponseWriter, r *http.Request, data validation.Data) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id, _ := data.Int(validation.FieldMovieID)

	current, err := h.movies.GetByID(r.Context(), int64(id))
	if store.IsNotFoundError(err) {
		respondInvalidID(w, r)
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting movie %d: %w", id, err)
	}

	merged := current.Merge(domain.MovieUpdate{
		Title:  data.StringPtr(validation.FieldTitle),
		Year:   data.IntPtr(validation.FieldYear),
		Review: data.StringPtr(validation.FieldReview),
		Cover:  data.StringPtr(validation.FieldCover),
	})

	err = h.movies.Update(r.Context(), &merged)
	if store.IsNotFoundError(err) {
		// Deleted between the read and the write.
		respondInvalidID(w, r)
		return nil
	}
	if err != nil {
		return fmt.Errorf("updating movie %d: %w", id, err)
	}

	log.Info("movie updated", slog.Int("movie_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		OK:      okTrue,
		Status:  http.StatusOK,
		Message: MsgMovieUpdated,
	})
	return nil
}

// Delete handles DELETE /delete.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request, data validation.Data) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id, _ := data.Int(validation.FieldMovieID)

	err := h.movies.Delete(r.Context(), int64(id))
	if store.IsNotFoundError(err) {
		respondInvalidID(w, r)
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting movie %d: %w", id, err)
	}

	log.Info("movie deleted", slog.Int("movie_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		OK:      okTrue,
		Status:  http.StatusOK,
		Message: MsgMovieDeleted,
	})
	return nil
}

func respondInvalidID(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{
		OK:      okFalse,
		Status:  http.StatusNotFound,
		Message: validation.MsgInvalidMovieID,
	})
}
