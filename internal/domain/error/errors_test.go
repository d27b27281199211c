package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestServiceErrorStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"BadRequest", BadRequest("Amount must be greater than zero."), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("Authentication required."), http.StatusUnauthorized},
		{"Forbidden", Forbidden("User not found."), http.StatusForbidden},
		{"Conflict", Conflict("User already exists."), http.StatusConflict},
		{"Internal", Internal("Failed to create user.", errors.New("boom")), http.StatusInternalServerError},
		{"UnknownError", errors.New("unknown error"), http.StatusInternalServerError},
		{"WrappedServiceError", fmt.Errorf("context: %w", Forbidden("User not found.")), http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := StatusOf(tc.err); status != tc.expected {
				t.Errorf("StatusOf(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestServiceErrorMessage(t *testing.T) {
	if msg := MessageOf(Conflict("User already exists.")); msg != "User already exists." {
		t.Errorf("MessageOf returned %q", msg)
	}

	// Unclassified errors must never leak their internals to callers
	if msg := MessageOf(errors.New("pq: connection refused")); msg != "Internal server error." {
		t.Errorf("MessageOf leaked an internal error: %q", msg)
	}
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("store down")
	err := Internal("Failed to create user.", cause)

	if !errors.Is(err, cause) {
		t.Error("Internal should wrap its cause")
	}
}

func TestSentinelHelpers(t *testing.T) {
	wrapped := fmt.Errorf("get by id: %w", ErrNotFound)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound matched an unrelated error")
	}

	dup := fmt.Errorf("create: %w: duplicate key value", ErrDuplicateKey)
	if !IsDuplicate(dup) {
		t.Error("IsDuplicate should see through wrapping")
	}
}
