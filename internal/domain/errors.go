package domain

import "errors"

// ErrValidation is returned when a domain entity fails validation.
// Validate wraps it around the specific field error.
var ErrValidation = errors.New("validation failed")
