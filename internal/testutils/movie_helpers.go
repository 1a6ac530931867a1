package testutils

import "github.com/phrazzld/movie-api/internal/domain"

// MovieOption customizes a test movie.
type MovieOption func(*domain.Movie)

// WithMovieID sets the movie's ID.
func WithMovieID(id int64) MovieOption {
	return func(m *domain.Movie) { m.ID = id }
}

// WithMovieTitle sets the movie's title.
func WithMovieTitle(title string) MovieOption {
	return func(m *domain.Movie) { m.Title = title }
}

// WithMovieYear sets the movie's year.
func WithMovieYear(year int) MovieOption {
	return func(m *domain.Movie) { m.Year = year }
}

// WithMovieReview sets the movie's review.
func WithMovieReview(review string) MovieOption {
	return func(m *domain.Movie) { m.Review = review }
}

// WithMovieCover sets the movie's cover; "" clears it.
func WithMovieCover(cover string) MovieOption {
	return func(m *domain.Movie) {
		if cover == "" {
			m.Cover = nil
			return
		}
		m.Cover = &cover
	}
}

// NewTestMovie returns a valid movie with default values, modified by opts.
func NewTestMovie(opts ...MovieOption) *domain.Movie {
	m := &domain.Movie{
		ID:     1,
		Title:  "Dune",
		Year:   2021,
		Review: "Great",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
