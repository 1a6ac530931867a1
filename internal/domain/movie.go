package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Year bounds accepted for a movie.
const (
	MinYear = 1800
	MaxYear = 2100
)

// Common validation errors for Movie
var (
	ErrEmptyMovieTitle  = errors.New("movie title cannot be empty")
	ErrEmptyMovieReview = errors.New("movie review cannot be empty")
	ErrInvalidMovieYear = errors.New("movie year out of range")
)

// Movie is a single persisted movie record.
// Title, Review and Cover hold already sanitized (trimmed and escaped) text.
type Movie struct {
	ID     int64   `json:"id"`
	Title  string  `json:"titulo"`
	Year   int     `json:"año"`
	Review string  `json:"critica"`
	Cover  *string `json:"caratula"`
}

// NewMovie builds a movie that has not been stored yet.
// An empty cover is normalized to nil so it is persisted as NULL.
func NewMovie(title string, year int, review string, cover string) (*Movie, error) {
	m := &Movie{
		Title:  title,
		Year:   year,
		Review: review,
	}
	if cover != "" {
		m.Cover = &cover
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the invariants every stored movie must hold.
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyMovieTitle)
	}
	if strings.TrimSpace(m.Review) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyMovieReview)
	}
	if m.Year < MinYear || m.Year > MaxYear {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidMovieYear)
	}
	return nil
}

// MovieUpdate carries the fields submitted to the edit operation.
// A nil field was not part of the request.
type MovieUpdate struct {
	Title  *string
	Year   *int
	Review *string
	Cover  *string
}

// Merge returns a copy of m with the submitted values of u applied.
//
// A submitted value replaces the stored one only when it is non-zero, so an
// empty cover or a zero year keeps what is already stored.
func (m Movie) Merge(u MovieUpdate) Movie {
	merged := m
	if u.Title != nil && *u.Title != "" {
		merged.Title = *u.Title
	}
	if u.Year != nil && *u.Year != 0 {
		merged.Year = *u.Year
	}
	if u.Review != nil && *u.Review != "" {
		merged.Review = *u.Review
	}
	if u.Cover != nil && *u.Cover != "" {
		cover := *u.Cover
		merged.Cover = &cover
	}
	return merged
}

// MovieResult is the outcome of a read: either a single movie or a list.
// Exactly one of the two variants is set; use IsSingle to tell them apart.
type MovieResult struct {
	single *Movie
	many   []Movie
}

// SingleMovie wraps one movie.
func SingleMovie(m Movie) MovieResult {
	return MovieResult{single: &m}
}

// ManyMovies wraps a list of movies. A nil list becomes an empty one.
func ManyMovies(ms []Movie) MovieResult {
	if ms == nil {
		ms = []Movie{}
	}
	return MovieResult{many: ms}
}

// IsSingle reports whether the result holds a single movie.
func (r MovieResult) IsSingle() bool {
	return r.single != nil
}

// Single returns the wrapped movie, or false for a list result.
func (r MovieResult) Single() (Movie, bool) {
	if r.single == nil {
		return Movie{}, false
	}
	return *r.single, true
}

// Many returns the wrapped list; it is empty for a single result.
func (r MovieResult) Many() []Movie {
	if r.many == nil {
		return []Movie{}
	}
	return r.many
}
