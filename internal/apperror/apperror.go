// Package apperror defines the application's error taxonomy.
//
// Lower layers (repository, service, auth) return these typed errors; the
// HTTP layer maps them onto status codes in exactly one place
// (handler/writeError). Nothing below the handlers knows about HTTP.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors checked with errors.Is throughout the codebase.
//
// ErrSessionExpired covers both "token unknown" and "token past its expiry" —
// the store lookup filters on existence AND expiry in one predicate, so the
// two cases are indistinguishable to the client on purpose.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionExpired  = errors.New("session expired")
	ErrUpstreamAuth    = errors.New("upstream auth failure")
)

// AppError pairs a sentinel with the message the client is allowed to see.
type AppError struct {
	Err     error  // sentinel, for errors.Is
	Message string // client-visible message, e.g. "Project not found"
	Field   string // optional: field that failed validation
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that no row exists for the given resource.
// The message matches the wire format the frontend expects: "<Resource> not found".
func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// Unauthenticated reports a request that carried no session token at all.
func Unauthenticated() *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: "Authentication required",
	}
}

// SessionExpired reports a token with no live session row behind it, whether
// because it expired or because it never existed.
func SessionExpired() *AppError {
	return &AppError{
		Err:     ErrSessionExpired,
		Message: "Session expired",
	}
}

// ValidationFailed reports a bad request body or field value.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// UpstreamAuth reports a failure talking to the OAuth provider. The wrapped
// cause stays server-side; the client only ever sees the generic message.
func UpstreamAuth(cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrUpstreamAuth, cause),
		Message: "Authentication failed",
	}
}
