package domain

import "errors"

// Sentinel errors classifying failures for the HTTP boundary.
// Wrap with fmt.Errorf("...: %w", Err...) to carry entity context.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the operation collides with existing state,
	// e.g. a duplicate external identity or a duplicate favorite.
	ErrConflict = errors.New("conflict")
	// ErrInvalid means required input is missing or malformed.
	ErrInvalid = errors.New("invalid input")
)
