package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NotFound("Project")

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound() should wrap ErrNotFound")
	}
	if err.Message != "Project not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Project not found")
	}
}

func TestUnauthenticated(t *testing.T) {
	err := Unauthenticated()

	if !errors.Is(err, ErrUnauthenticated) {
		t.Error("Unauthenticated() should wrap ErrUnauthenticated")
	}
	if err.Message != "Authentication required" {
		t.Errorf("Message = %q, want %q", err.Message, "Authentication required")
	}
}

func TestSessionExpired(t *testing.T) {
	err := SessionExpired()

	if !errors.Is(err, ErrSessionExpired) {
		t.Error("SessionExpired() should wrap ErrSessionExpired")
	}
	if err.Message != "Session expired" {
		t.Errorf("Message = %q, want %q", err.Message, "Session expired")
	}
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("name", "name is required")

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationFailed() should wrap ErrValidation")
	}
	if err.Field != "name" {
		t.Errorf("Field = %q, want %q", err.Field, "name")
	}
	if err.Error() != "name is required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "name is required")
	}
}

func TestUpstreamAuth_PreservesCause(t *testing.T) {
	cause := errors.New("github returned 502")
	err := UpstreamAuth(cause)

	if !errors.Is(err, ErrUpstreamAuth) {
		t.Error("UpstreamAuth() should wrap ErrUpstreamAuth")
	}
	if !errors.Is(err, cause) {
		t.Error("UpstreamAuth() should preserve the underlying cause")
	}
	// The client-visible message must never leak the cause.
	if err.Message != "Authentication failed" {
		t.Errorf("Message = %q, want %q", err.Message, "Authentication failed")
	}
}

func TestWrappedErrorsSurviveFurtherWrapping(t *testing.T) {
	// Services wrap repository errors with fmt.Errorf("...: %w", err).
	// errors.Is must still find the sentinel through the extra layer.
	inner := NotFound("Maintainer")
	outer := fmt.Errorf("service/maintainer: fetching abc: %w", inner)

	if !errors.Is(outer, ErrNotFound) {
		t.Error("errors.Is should find ErrNotFound through wrapping")
	}

	var appErr *AppError
	if !errors.As(outer, &appErr) {
		t.Fatal("errors.As should extract *AppError through wrapping")
	}
	if appErr.Message != "Maintainer not found" {
		t.Errorf("Message = %q, want %q", appErr.Message, "Maintainer not found")
	}
}
