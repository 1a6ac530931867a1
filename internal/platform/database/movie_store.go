package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/movie-api/internal/domain"
	"github.com/phrazzld/movie-api/internal/platform/logger"
	"github.com/phrazzld/movie-api/internal/store"
)

const (
	insertMovieSQL = `INSERT INTO movies (title, year, review, cover) VALUES ($1, $2, $3, $4) RETURNING id`
	listMoviesSQL  = `SELECT id, title, year, review, cover FROM movies ORDER BY id`
	getMovieSQL    = `SELECT id, title, year, review, cover FROM movies WHERE id = $1`
	updateMovieSQL = `UPDATE movies SET title = $1, year = $2, review = $3, cover = $4 WHERE id = $5`
	deleteMovieSQL = `DELETE FROM movies WHERE id = $1`
)

// SQLMovieStore implements the store.MovieStore interface on a store.Gateway.
type SQLMovieStore struct {
	gw     store.Gateway
	logger *slog.Logger
}

// NewSQLMovieStore creates a movie store that issues its statements through gw.
// If logger is nil, a default logger will be used.
func NewSQLMovieStore(gw store.Gateway, logger *slog.Logger) *SQLMovieStore {
	if gw == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("gateway cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SQLMovieStore{
		gw:     gw,
		logger: logger.With(slog.String("component", "movie_store")),
	}
}

// Ensure SQLMovieStore implements store.MovieStore interface
var _ store.MovieStore = (*SQLMovieStore)(nil)

// Create implements store.MovieStore.Create.
// A nil cover is stored as NULL.
func (s *SQLMovieStore) Create(ctx context.Context, movie *domain.Movie) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.gw.Insert(ctx, insertMovieSQL, movie.Title, movie.Year, movie.Review, nullString(movie.Cover))
	if err != nil {
		log.Error("failed to create movie", slog.String("error", err.Error()))
		return 0, store.NewStoreError("movie", "create", "insert failed", err)
	}

	log.Info("movie created", slog.Int64("movie_id", res.InsertID))
	return res.InsertID, nil
}

// List implements store.MovieStore.List.
func (s *SQLMovieStore) List(ctx context.Context) ([]domain.Movie, error) {
	movies := []domain.Movie{}
	err := s.gw.Query(ctx, listMoviesSQL, nil, func(row store.Scanner) error {
		m, err := scanMovie(row)
		if err != nil {
			return err
		}
		movies = append(movies, *m)
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list movies",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("movie", "list", "select failed", err)
	}
	return movies, nil
}

// GetByID implements store.MovieStore.GetByID.
func (s *SQLMovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var found *domain.Movie
	err := s.gw.Query(ctx, getMovieSQL, []any{id}, func(row store.Scanner) error {
		m, err := scanMovie(row)
		if err != nil {
			return err
		}
		found = m
		return nil
	})
	if err != nil {
		log.Error("failed to get movie by ID",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", id))
		return nil, store.NewStoreError("movie", "get", "select failed", err)
	}
	if found == nil {
		log.Debug("movie not found", slog.Int64("movie_id", id))
		return nil, store.ErrMovieNotFound
	}
	return found, nil
}

// Update implements store.MovieStore.Update.
func (s *SQLMovieStore) Update(ctx context.Context, movie *domain.Movie) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.gw.Execute(ctx, updateMovieSQL,
		movie.Title, movie.Year, movie.Review, nullString(movie.Cover), movie.ID)
	if err != nil {
		log.Error("failed to update movie",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movie.ID))
		return store.NewStoreError("movie", "update", "update failed", err)
	}
	if res.AffectedRows == 0 {
		return fmt.Errorf("update movie %d: %w", movie.ID, store.ErrMovieNotFound)
	}

	log.Info("movie updated", slog.Int64("movie_id", movie.ID))
	return nil
}

// Delete implements store.MovieStore.Delete.
func (s *SQLMovieStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.gw.Execute(ctx, deleteMovieSQL, id)
	if err != nil {
		log.Error("failed to delete movie",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", id))
		return store.NewStoreError("movie", "delete", "delete failed", err)
	}
	if res.AffectedRows == 0 {
		log.Debug("movie not found for delete", slog.Int64("movie_id", id))
		return fmt.Errorf("delete movie %d: %w", id, store.ErrMovieNotFound)
	}

	log.Info("movie deleted", slog.Int64("movie_id", id))
	return nil
}

func scanMovie(row store.Scanner) (*domain.Movie, error) {
	var (
		m     domain.Movie
		cover sql.NullString
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Review, &cover); err != nil {
		return nil, fmt.Errorf("scan movie: %w", err)
	}
	if cover.Valid {
		m.Cover = &cover.String
	}
	return &m, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
