// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts the movie store to a JSON REST surface:
// every route runs its validation rules first, answers 422 with the
// collected field errors, and otherwise hands the sanitized data to a
// handler whose errors end up at the ErrorHandler.
package api
