package api

import (
	"github.com/phrazzld/movie-api/internal/domain"
	"github.com/phrazzld/movie-api/internal/validation"
)

// Values of the ok field.
const (
	okTrue  = 1
	okFalse = 0
)

// Success messages.
const (
	MsgMovieCreated = "película creada de manera exitosa"
	MsgMovieUpdated = "película actualizada de manera exitosa"
	MsgMovieDeleted = "película eliminada de manera exitosa"
)

// CreateMovieResponse is the body of a 201 from POST /create.
type CreateMovieResponse struct {
	OK      int    `json:"ok"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	MovieID int64  `json:"id_pelicula"`
}

// MovieListResponse is the body of a successful list.
type MovieListResponse struct {
	OK     int            `json:"ok"`
	Status int            `json:"status"`
	Movies []domain.Movie `json:"movies"`
}

// MovieResponse is the body of a successful single-movie read.
type MovieResponse struct {
	OK     int          `json:"ok"`
	Status int          `json:"status"`
	Movie  domain.Movie `json:"movie"`
}

// MessageResponse carries a fixed message, for successes and for 404s.
type MessageResponse struct {
	OK      int    `json:"ok"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of a 422.
type ValidationErrorResponse struct {
	OK     int               `json:"ok"`
	Status int               `json:"status"`
	Errors validation.Errors `json:"errors"`
}
