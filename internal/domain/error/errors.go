package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used across the persistence gateway and the core.
var (
	// ErrNotFound is returned by the persistence gateway when a record
	// matching the lookup does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert violates a unique constraint
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidAmount is returned when a monetary amount fails validation
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrStaleBalance is returned when a guarded balance update matched no
	// row because a concurrent mutation changed the balance after it was
	// read. The whole transactional scope is retried on a fresh read.
	ErrStaleBalance = errors.New("balance changed concurrently")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ServiceError carries a fixed HTTP status and a human-readable message
// for a core-level failure. The message is safe to surface to API callers.
type ServiceError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// BadRequest signals invalid input (non-positive amount, insufficient balance).
func BadRequest(message string) error {
	return &ServiceError{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized signals a missing or invalid session.
func Unauthorized(message string) error {
	return &ServiceError{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden signals a missing user/wallet/counterparty or invalid credentials.
// Deliberately reused for failed logins so account existence never leaks.
func Forbidden(message string) error {
	return &ServiceError{Status: http.StatusForbidden, Message: message}
}

// Conflict signals a duplicate registration.
func Conflict(message string) error {
	return &ServiceError{Status: http.StatusConflict, Message: message}
}

// Internal signals an unexpected or backing-store failure.
func Internal(message string, cause error) error {
	return &ServiceError{Status: http.StatusInternalServerError, Message: message, Err: cause}
}

// StatusOf resolves the HTTP status for an error. Unknown errors map to 500.
func StatusOf(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}

// MessageOf resolves the user-visible message for an error. Unknown errors
// collapse to a generic message so internals never leak to callers.
func MessageOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return "Internal server error."
}

// IsNotFound reports whether err stems from a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether err stems from a unique-constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
