package service

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound means the operation targeted a slug no post has.
	ErrPostNotFound = errors.New("post not found")
	// ErrDuplicateSlug means a create collided with an existing slug.
	ErrDuplicateSlug = errors.New("a post with that slug already exists")
	// ErrUnauthorized means the actor lacks the admin role.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUploadRejected means the media host or our own checks rejected
	// the file (type, size).
	ErrUploadRejected = errors.New("upload rejected")
	// ErrNotFound is the generic missing-record error for the secondary
	// entities (projects, experiences, achievements, quotes).
	ErrNotFound = errors.New("record not found")
	// ErrChatNotConfigured means no API key is available for the chat
	// backend.
	ErrChatNotConfigured = errors.New("chat api key is not configured")
)

// ValidationError reports a missing or malformed required field. The
// caller corrects the input and retries; no store call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Actor identifies who is performing an operation. Role gates every
// mutating call.
type Actor struct {
	Name  string
	Email string
	Role  string
}

// RoleAdmin is the only role allowed to mutate content.
const RoleAdmin = "admin"

// IsAdmin reports whether the actor may mutate content.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
