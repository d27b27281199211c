package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionManager records session lifecycle calls without a database.
type fakeSessionManager struct {
	begins    int
	commits   int
	rollbacks int

	beginErr    error
	commitErr   error
	rollbackErr error
}

func (f *fakeSessionManager) Begin(ctx context.Context) (context.Context, error) {
	f.begins++
	if f.beginErr != nil {
		return ctx, f.beginErr
	}
	return ctx, nil
}

func (f *fakeSessionManager) Commit(ctx context.Context) error {
	f.commits++
	return f.commitErr
}

func (f *fakeSessionManager) Rollback(ctx context.Context) error {
	f.rollbacks++
	return f.rollbackErr
}

// fakeClassifier marks a fixed set of errors as transient.
type fakeClassifier struct {
	transient map[error]bool
}

func (f *fakeClassifier) IsTransient(err error) bool {
	return f.transient[err]
}

func newTestTxManager(uow *fakeSessionManager, classifier *fakeClassifier, cfg RetryConfig) *TxManager {
	return NewTxManager(uow, classifier, cfg, logger.NewNoopLogger())
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	fastRetry := RetryConfig{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

	t.Run("Successful work commits once", func(t *testing.T) {
		uow := &fakeSessionManager{}
		m := newTestTxManager(uow, &fakeClassifier{}, fastRetry)

		calls := 0
		err := m.RunInTransaction(ctx, func(txCtx context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, uow.begins)
		assert.Equal(t, 1, uow.commits)
		assert.Equal(t, 0, uow.rollbacks)
	})

	t.Run("Non-transient error is not retried", func(t *testing.T) {
		uow := &fakeSessionManager{}
		m := newTestTxManager(uow, &fakeClassifier{}, fastRetry)

		permanent := errors.New("insufficient balance")
		calls := 0
		err := m.RunInTransaction(ctx, func(txCtx context.Context) error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, uow.rollbacks)
		assert.Equal(t, 0, uow.commits)
	})

	t.Run("Transient error is retried until success", func(t *testing.T) {
		uow := &fakeSessionManager{}
		transient := errors.New("deadlock detected")
		m := newTestTxManager(uow, &fakeClassifier{transient: map[error]bool{transient: true}}, fastRetry)

		calls := 0
		err := m.RunInTransaction(ctx, func(txCtx context.Context) error {
			calls++
			if calls < 3 {
				return transient
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 3, uow.begins)
		assert.Equal(t, 2, uow.rollbacks)
		assert.Equal(t, 1, uow.commits)
	})

	t.Run("Exhausted retries surface the last transient error", func(t *testing.T) {
		uow := &fakeSessionManager{}
		transient := errors.New("serialization failure")
		m := newTestTxManager(uow, &fakeClassifier{transient: map[error]bool{transient: true}}, fastRetry)

		calls := 0
		err := m.RunInTransaction(ctx, func(txCtx context.Context) error {
			calls++
			return transient
		})

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, fastRetry.MaxRetries+1, calls)
	})

	t.Run("Zero retries means a single attempt", func(t *testing.T) {
		uow := &fakeSessionManager{}
		transient := errors.New("deadlock detected")
		cfg := RetryConfig{MaxRetries: 0, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}
		m := newTestTxManager(uow, &fakeClassifier{transient: map[error]bool{transient: true}}, cfg)

		calls := 0
		err := m.RunInTransaction(ctx, func(txCtx context.Context) error {
			calls++
			return transient
		})

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 1, calls)
	})

	t.Run("Transient commit failure is retried", func(t *testing.T) {
		uow := &fakeSessionManager{}
		commitErr := errors.New("connection reset during commit")
		uow.commitErr = commitErr
		m := newTestTxManager(uow, &fakeClassifier{transient: map[error]bool{commitErr: true}}, RetryConfig{
			MaxRetries: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond,
		})

		err := m.RunInTransaction(ctx, func(txCtx context.Context) error { return nil })

		assert.ErrorIs(t, err, commitErr)
		assert.Equal(t, 2, uow.commits)
	})

	t.Run("Begin failure propagates", func(t *testing.T) {
		beginErr := errors.New("pool exhausted")
		uow := &fakeSessionManager{beginErr: beginErr}
		m := newTestTxManager(uow, &fakeClassifier{}, fastRetry)

		err := m.RunInTransaction(ctx, func(txCtx context.Context) error {
			t.Fatal("unit of work must not run when Begin fails")
			return nil
		})

		assert.ErrorIs(t, err, beginErr)
		assert.Equal(t, 0, uow.commits)
		assert.Equal(t, 0, uow.rollbacks)
	})

	t.Run("Cancelled context stops the backoff wait", func(t *testing.T) {
		uow := &fakeSessionManager{}
		transient := errors.New("deadlock detected")
		m := newTestTxManager(uow, &fakeClassifier{transient: map[error]bool{transient: true}}, RetryConfig{
			MaxRetries: 5, InitialDelay: time.Minute, MaxDelay: time.Minute,
		})

		cancelCtx, cancel := context.WithCancel(ctx)
		calls := 0
		done := make(chan error, 1)
		go func() {
			done <- m.RunInTransaction(cancelCtx, func(txCtx context.Context) error {
				calls++
				return transient
			})
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
			assert.Equal(t, 1, calls)
		case <-time.After(5 * time.Second):
			t.Fatal("retry loop did not observe cancellation")
		}
	})
}

func TestBackoff(t *testing.T) {
	m := newTestTxManager(&fakeSessionManager{}, &fakeClassifier{}, RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
	})

	assert.Equal(t, 100*time.Millisecond, m.backoff(1))
	assert.Equal(t, 200*time.Millisecond, m.backoff(2))
	assert.Equal(t, 400*time.Millisecond, m.backoff(3))
	assert.Equal(t, 800*time.Millisecond, m.backoff(4))
	assert.Equal(t, time.Second, m.backoff(5))
	assert.Equal(t, time.Second, m.backoff(10))
}
