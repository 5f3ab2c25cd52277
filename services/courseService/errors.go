package courseService

import "errors"

// Sentinel errors returned by the course services. Controllers map these to
// HTTP responses; anything else is treated as an internal error.
var (
	// ErrForbidden covers every ownership-guard failure. Lookup misses and
	// creator mismatches are deliberately indistinguishable so callers can
	// never probe whether an entity exists.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned by read paths where hiding existence is not required.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries per-field messages for a rejected mutation,
// e.g. a publish attempt with required fields missing.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}
