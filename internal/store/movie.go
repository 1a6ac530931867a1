package store

import (
	"context"

	"github.com/phrazzld/movie-api/internal/domain"
)

// MovieStore defines the interface for movie data persistence.
type MovieStore interface {
	// Create inserts a new movie and returns the id assigned by the database.
	// The movie's ID field is ignored.
	Create(ctx context.Context, movie *domain.Movie) (int64, error)

	// List returns every stored movie ordered by id. An empty table yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Movie, error)

	// GetByID retrieves a movie by its id.
	// Returns ErrMovieNotFound if the movie does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)

	// Update overwrites every column of an existing movie with movie's values.
	// Returns ErrMovieNotFound if no row has movie.ID.
	Update(ctx context.Context, movie *domain.Movie) error

	// Delete removes a movie by its id.
	// Returns ErrMovieNotFound if the movie does not exist.
	Delete(ctx context.Context, id int64) error
}
