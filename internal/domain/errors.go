package domain

import "errors"

// Sentinel errors for the error taxonomy - use with errors.Is().
// ErrUnauthorized and ErrForbidden are defined but no route currently
// enforces ownership; identity is optional and defaults to anonymous.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ConflictError reports a unique-constraint violation with details about
// the conflicting resource.
type ConflictError struct {
	Message      string
	ResourceType string // chat, message, vote, document, suggestion, stream
	ResourceID   string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
