package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/movie-api/internal/validation"
)

// Route binds a method and path to the rules and handler that serve it.
type Route struct {
	Method  string
	Pattern string
	Rules   validation.RuleSet
	Handle  HandlerFunc
}

// MovieRoutes is the route table of the movie API, Spanish aliases included.
func MovieRoutes(h *MovieHandler) []Route {
	return []Route{
		{Method: http.MethodPost, Pattern: "/create", Rules: validation.CreateRules, Handle: h.Create},
		{Method: http.MethodGet, Pattern: "/movies", Handle: h.Show},
		{Method: http.MethodGet, Pattern: "/peliculas", Handle: h.Show},
		{Method: http.MethodGet, Pattern: "/movie/{id}", Rules: validation.GetRules, Handle: h.Show},
		{Method: http.MethodGet, Pattern: "/pelicula/{id}", Rules: validation.GetRules, Handle: h.Show},
		{Method: http.MethodPut, Pattern: "/edit", Rules: validation.UpdateRules, Handle: h.Edit},
		{Method: http.MethodDelete, Pattern: "/delete", Rules: validation.DeleteRules, Handle: h.Delete},
	}
}

// Mount registers routes on r behind p, and sends unmatched requests to errs.
func Mount(r chi.Router, routes []Route, p *Pipeline, errs *ErrorHandler) {
	for _, route := range routes {
		r.Method(route.Method, route.Pattern, p.Wrap(route.Rules, route.Handle))
	}
	r.NotFound(errs.NotFound)
	r.MethodNotAllowed(errs.MethodNotAllowed)
}
