package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/movie-api/internal/domain"
	"github.com/phrazzld/movie-api/internal/mocks"
	"github.com/phrazzld/movie-api/internal/testutils"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the movie routes over ms exactly as the server does.
func newTestRouter(ms *mocks.MockMovieStore) http.Handler {
	log := discardLogger()
	errs := NewErrorHandler(log)
	r := chi.NewRouter()
	Mount(r, MovieRoutes(NewMovieHandler(ms, log)), NewPipeline(errs, log), errs)
	return r
}

func storedMovie() *domain.Movie {
	return testutils.NewTestMovie(testutils.WithMovieID(5), testutils.WithMovieCover("dune.jpg"))
}
