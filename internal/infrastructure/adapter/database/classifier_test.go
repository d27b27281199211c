package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifierIsTransient(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("SQLSTATE classification", func(t *testing.T) {
		tests := []struct {
			name string
			code string
			want bool
		}{
			{"serialization failure", "40001", true},
			{"deadlock detected", "40P01", true},
			{"too many connections", "53300", true},
			{"lock not available", "55P03", true},
			{"connection failure", "08006", true},
			{"admin shutdown", "57P01", true},
			{"unique violation is not transient", "23505", false},
			{"foreign key violation is not transient", "23503", false},
			{"syntax error is not transient", "42601", false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := &pgconn.PgError{Code: tt.code, Message: "some failure"}
				assert.Equal(t, tt.want, c.IsTransient(err))
			})
		}
	})

	t.Run("Message-pattern fallback", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want bool
		}{
			{"deadlock in message", errors.New("Deadlock found when trying to get lock"), true},
			{"connection reset", errors.New("read tcp: connection reset by peer"), true},
			{"connection refused", errors.New("dial tcp: connection refused"), true},
			{"server closed", errors.New("driver: server closed the connection"), true},
			{"timeout", errors.New("context deadline exceeded: i/o timeout"), true},
			{"plain failure", errors.New("column does not exist"), false},
			{"nil", nil, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, c.IsTransient(tt.err))
			})
		}
	})

	t.Run("Stale balance guard is retryable", func(t *testing.T) {
		assert.True(t, c.IsTransient(errs.ErrStaleBalance))
		assert.True(t, c.IsTransient(fmt.Errorf("apply balance for user u1: %w", errs.ErrStaleBalance)))
	})

	t.Run("Wrapped pg errors are unwrapped", func(t *testing.T) {
		inner := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
		wrapped := fmt.Errorf("update wallet: %w", inner)
		assert.True(t, c.IsTransient(wrapped))
	})

	t.Run("Typed code wins over message text", func(t *testing.T) {
		// A non-transient SQLSTATE stays non-transient even when the
		// message happens to contain a transient pattern.
		err := &pgconn.PgError{Code: "23505", Message: "duplicate key value based on timeout index"}
		assert.False(t, c.IsTransient(err))
	})
}

func TestErrorClassifierIsDuplicateKey(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation code", &pgconn.PgError{Code: "23505"}, true},
		{"other constraint code", &pgconn.PgError{Code: "23503"}, false},
		{"wrapped unique violation", fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres message fallback", errors.New(`duplicate key value violates unique constraint "users_email_key"`), true},
		{"sqlite message fallback", errors.New("UNIQUE constraint failed: users.email"), true},
		{"unrelated error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsDuplicateKey(tt.err))
		})
	}
}
