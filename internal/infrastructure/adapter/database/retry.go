package database

import (
	"context"
	"time"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// RetryConfig bounds the retry behavior for transactional units of work
type RetryConfig struct {
	// MaxRetries is the number of additional attempts after the first
	// failure. Zero disables retries.
	MaxRetries int
	// InitialDelay is the backoff before the first retry; it doubles on
	// every subsequent retry.
	InitialDelay time.Duration
	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   0,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
	}
}

// sessionManager is the slice of UnitOfWork the runner needs
type sessionManager interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// transientClassifier decides which failures are worth retrying
type transientClassifier interface {
	IsTransient(err error) bool
}

// TxManager runs units of work inside a transactional session with
// bounded retries for transient store failures. It is the only path
// through which the ledger core mutates balances.
//
// Per attempt: acquire session, run work, commit. On failure: roll back,
// classify; a transient error with retry budget left backs off
// exponentially and reacquires a fresh session, anything else propagates.
// The last transient error is surfaced when the budget is exhausted.
type TxManager struct {
	uow        sessionManager
	classifier transientClassifier
	config     RetryConfig
	logger     coreport.Logger
}

// compile-time check that TxManager satisfies the domain port
var _ persistence.TxRunner = (*TxManager)(nil)

// NewTxManager creates a transactional runner around the unit of work
func NewTxManager(uow sessionManager, classifier transientClassifier, config RetryConfig, logger coreport.Logger) *TxManager {
	return &TxManager{
		uow:        uow,
		classifier: classifier,
		config:     config,
		logger:     logger,
	}
}

// RunInTransaction implements persistence.TxRunner
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= m.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := m.backoff(attempt)
			m.logger.Warn("Transient transaction error, retrying", map[string]any{
				"attempt":     attempt,
				"max_retries": m.config.MaxRetries,
				"error":       lastErr.Error(),
				"retry_after": backoff.String(),
			})

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !m.classifier.IsTransient(err) {
			return err
		}
		lastErr = err
	}

	m.logger.Error("Transaction retries exhausted", map[string]any{
		"max_retries": m.config.MaxRetries,
		"error":       lastErr.Error(),
	})
	return lastErr
}

// runOnce executes a single attempt: begin, work, commit or rollback.
// Exactly one session is acquired and released on every exit path.
func (m *TxManager) runOnce(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := m.uow.Rollback(txCtx); rbErr != nil {
			m.logger.Error("Rollback failed after unit of work error", map[string]any{
				"work_error":     err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return m.uow.Commit(txCtx)
}

// backoff computes the delay before the given retry attempt (1-based),
// doubling from InitialDelay and capped at MaxDelay.
func (m *TxManager) backoff(attempt int) time.Duration {
	delay := m.config.InitialDelay * (1 << uint(attempt-1))
	if m.config.MaxDelay > 0 && delay > m.config.MaxDelay {
		delay = m.config.MaxDelay
	}
	return delay
}
