package errs

import (
	"fmt"
	"strings"
)

const (
	// MissingIdentity is returned when a like operation arrives without a
	// userid header.
	MissingIdentity appError = "likeboard: userid header is required"
	// NotFound is returned when a post cannot be found in the database.
	NotFound appError = "likeboard: post not found"
	// RouteNotFound is returned for a path or method the API does not serve.
	RouteNotFound appError = "likeboard: route not found"
	// ForbiddenOrigin is returned by the origin policy for an origin that is
	// neither allow-listed nor on a trusted platform.
	ForbiddenOrigin appError = "likeboard: not allowed by CORS"
	// ContentRequired is returned when a post is created without content.
	ContentRequired appError = "likeboard: content is required"
	// StorageUnavailable wraps every failure of the document store, including
	// the readiness gate refusing a request.
	StorageUnavailable appError = "likeboard: database connection error"
)

type appError string

func (e appError) Error() string {
	return string(e)
}

// Public returns the message shown to API callers.
func (e appError) Public() string {
	s := strings.Replace(string(e), "likeboard: ", "", 1)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NotReadyError is returned by the readiness gate. It carries the connection
// state so the response can report it.
type NotReadyError struct {
	State int
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("%s (state %d)", StorageUnavailable, e.State)
}

func (e *NotReadyError) Unwrap() error {
	return StorageUnavailable
}

// Storage marks err as a storage failure while keeping it inspectable.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", StorageUnavailable, op, err)
}
