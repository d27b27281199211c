package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
)

// Postgres SQLSTATE codes treated as transient: lock contention,
// serialization failures, connection loss, resource exhaustion and
// shutdown states. Operations failing with one of these are expected to
// succeed on retry once the contention clears.
var transientSQLStates = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"53300": {}, // too_many_connections
	"55P03": {}, // lock_not_available
	"08000": {}, // connection_exception
	"08003": {}, // connection_does_not_exist
	"08006": {}, // connection_failure
	"08007": {}, // transaction_resolution_unknown
	"57P01": {}, // admin_shutdown
	"57P02": {}, // crash_shutdown
	"57P03": {}, // cannot_connect_now
}

// uniqueViolation is the SQLSTATE for unique-constraint violations
const uniqueViolation = "23505"

// Message-pattern fallback for errors that reach us without a SQLSTATE
// (driver-level failures, pooled-connection breakage).
var transientMessagePatterns = []string{
	"deadlock",
	"serialization",
	"lock timeout",
	"lock wait timeout",
	"connection reset",
	"connection refused",
	"too many connections",
	"server closed",
	"broken pipe",
	"timeout",
	"eof",
}

// ErrorClassifier classifies raw postgres errors independently of the
// ledger logic. Typed SQLSTATE matching is preferred; message substrings
// are the fallback.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsTransient reports whether the error is expected to resolve on retry
func (c *ErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// A failed optimistic balance guard resolves on a fresh read the same
	// way a serialization failure does.
	if errors.Is(err, errs.ErrStaleBalance) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := transientSQLStates[pgErr.Code]
		return ok
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientMessagePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// IsDuplicateKey reports whether the error is a unique-constraint violation
func (c *ErrorClassifier) IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
