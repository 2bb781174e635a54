package models

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned when a write is attempted against a
// completed class session. Completion is terminal.
var ErrSessionClosed = errors.New("session is completed and closed for writes")

// ValidationError represents malformed input, such as a score outside
// the allowed range or a missing sport for an open session
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError represents an unknown session, student, class or sport
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
