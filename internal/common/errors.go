package common

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is the repository-level empty-result signal, distinct
	// from a connectivity failure. The service layer decides whether it
	// becomes a domain error or an empty collection.
	ErrNotFound = errors.New("requested resource not found")

	ErrUserNotFound       = errors.New("User was not found.")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrBadRequest         = errors.New("bad request")
	ErrInternalServer     = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes. Anything
// outside the domain taxonomy (database failures included, constraint
// violations among them) is an opaque 500.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
