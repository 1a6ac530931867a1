package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/movie-api/internal/api/shared"
	"github.com/phrazzld/movie-api/internal/platform/logger"
)

// GenericErrorMessage is sent for any error that carries no message of its own.
const GenericErrorMessage = "Error interno del servidor"

// Messages for errors raised before a handler runs.
const (
	MsgMalformedJSON    = "JSON inválido"
	MsgBodyTooLarge     = "Cuerpo de la solicitud demasiado grande"
	MsgRouteNotFound    = "Ruta no encontrada"
	MsgMethodNotAllowed = "Método no permitido"
)

// HTTPError is an error with an explicit status code and client message.
// Errors of any other type are answered with 500 and GenericErrorMessage.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// NewHTTPError creates an HTTPError wrapping err, which may be nil.
func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Err: err}
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// MapErrorToStatusCode resolves the status for err. Only an HTTPError in the
// chain chooses its status; everything else is a 500.
func MapErrorToStatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage resolves the client-facing message for err. Storage and
// unexpected errors never leak their text.
func GetSafeErrorMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return GenericErrorMessage
}

// ErrorHandler is the boundary collaborator that turns handler errors into
// `{"message": ...}` responses.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new ErrorHandler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ErrorHandler")
	}
	return &ErrorHandler{logger: logger.With(slog.String("component", "error_handler"))}
}

// Handle writes the response for err.
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	ctx := logger.WithLogger(r.Context(), logger.FromContextOrDefault(r.Context(), h.logger))
	shared.RespondWithErrorAndLog(w, r.WithContext(ctx), MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// NotFound answers requests that match no route.
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Handle(w, r, NewHTTPError(http.StatusNotFound, MsgRouteNotFound, nil))
}

// MethodNotAllowed answers requests whose path matches but method does not.
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Handle(w, r, NewHTTPError(http.StatusMethodNotAllowed, MsgMethodNotAllowed, nil))
}

// decodeError converts a body decoding failure into an HTTPError.
func decodeError(err error) error {
	switch {
	case errors.Is(err, shared.ErrBodyTooLarge):
		return NewHTTPError(http.StatusRequestEntityTooLarge, MsgBodyTooLarge, err)
	case errors.Is(err, shared.ErrMalformedJSON):
		return NewHTTPError(http.StatusBadRequest, MsgMalformedJSON, err)
	default:
		return err
	}
}
