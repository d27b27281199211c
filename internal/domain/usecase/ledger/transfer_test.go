package ledger

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/database"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/lendmark/demo-credit/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	counterpartyID       = "5f0c9fbd-9bb0-4f2f-8f0e-333333333333"
	counterpartyWalletID = "5f0c9fbd-9bb0-4f2f-8f0e-444444444444"
)

// recordingSession counts session lifecycle calls for tests that compose the
// ledger with the real transactional runner.
type recordingSession struct {
	begins    int
	commits   int
	rollbacks int
}

func (s *recordingSession) Begin(ctx context.Context) (context.Context, error) {
	s.begins++
	return ctx, nil
}

func (s *recordingSession) Commit(ctx context.Context) error {
	s.commits++
	return nil
}

func (s *recordingSession) Rollback(ctx context.Context) error {
	s.rollbacks++
	return nil
}

func expectCounterparty(m ledgerMocks, balance int64) {
	m.users.EXPECT().GetByID(mock.Anything, counterpartyID).
		Return(&entity.User{ID: counterpartyID, FirstName: "Bola", LastName: "Eze"}, nil)
	m.wallets.EXPECT().GetOne(mock.Anything, persistence.Filter{"user_id": counterpartyID}).
		Return(&entity.Wallet{ID: counterpartyWalletID, UserID: counterpartyID, Currency: "NGN", Balance: balance}, nil)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful transfer writes two linked legs", func(t *testing.T) {
		svc, m := newLedgerService(t)
		passthroughTx(m)
		expectUserAndWallet(m, testUserID, 5000)
		expectCounterparty(m, 100)

		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": testUserID, "balance": int64(5000)},
			map[string]any{"balance": int64(3985)},
		).Return(nil).Once()
		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": counterpartyID, "balance": int64(100)},
			map[string]any{"balance": int64(1115)},
		).Return(nil).Once()

		var legs []*entity.Transaction
		m.transactions.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, txn *entity.Transaction) {
				if txn.ID == "" {
					txn.ID = "generated-" + string(txn.Type)
				}
				legs = append(legs, txn)
			}).Return(nil).Twice()

		m.cache.EXPECT().Invalidate(mock.Anything, testUserID, counterpartyID).Once()

		debit, err := svc.Transfer(ctx, testUserID, counterpartyID, 1015, "")

		require.NoError(t, err)
		require.Len(t, legs, 2)

		credit := legs[1]
		assert.Same(t, legs[0], debit)

		assert.Equal(t, entity.TypeDebit, debit.Type)
		assert.Equal(t, entity.TypeCredit, credit.Type)
		assert.Equal(t, debit.TransactionReference, credit.TransactionReference)
		require.NotNil(t, credit.RelatedTransactionID)
		assert.Equal(t, debit.ID, *credit.RelatedTransactionID)

		assert.Equal(t, int64(5000), debit.BalanceBefore)
		assert.Equal(t, int64(3985), debit.BalanceAfter)
		assert.Equal(t, int64(100), credit.BalanceBefore)
		assert.Equal(t, int64(1115), credit.BalanceAfter)

		assert.Equal(t, counterpartyID, debit.CounterpartyID)
		assert.Equal(t, testUserID, credit.CounterpartyID)

		assert.Equal(t, "Transferred 10.15 to Bola Eze", debit.Narration)
		assert.Equal(t, "Received 10.15 from Ada Obi", credit.Narration)
	})

	t.Run("Self transfer is rejected", func(t *testing.T) {
		svc, _ := newLedgerService(t)

		txn, err := svc.Transfer(ctx, testUserID, testUserID, 100, "")

		assert.Nil(t, txn)
		assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
		assert.Equal(t, "Cannot transfer to your own wallet.", errs.MessageOf(err))
	})

	t.Run("Insufficient balance aborts before any mutation", func(t *testing.T) {
		svc, m := newLedgerService(t)
		passthroughTx(m)
		expectUserAndWallet(m, testUserID, 99)

		txn, err := svc.Transfer(ctx, testUserID, counterpartyID, 100, "")

		assert.Nil(t, txn)
		assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
		assert.Equal(t, "Insufficient balance for transfer.", errs.MessageOf(err))
		m.wallets.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown counterparty maps to Forbidden", func(t *testing.T) {
		svc, m := newLedgerService(t)
		passthroughTx(m)
		expectUserAndWallet(m, testUserID, 5000)
		m.users.EXPECT().GetByID(mock.Anything, counterpartyID).Return(nil, errs.ErrNotFound)

		txn, err := svc.Transfer(ctx, testUserID, counterpartyID, 100, "")

		assert.Nil(t, txn)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "Counterparty not found.", errs.MessageOf(err))
	})

	t.Run("Counterparty without a wallet maps to Forbidden", func(t *testing.T) {
		svc, m := newLedgerService(t)
		passthroughTx(m)
		expectUserAndWallet(m, testUserID, 5000)
		m.users.EXPECT().GetByID(mock.Anything, counterpartyID).
			Return(&entity.User{ID: counterpartyID}, nil)
		m.wallets.EXPECT().GetOne(mock.Anything, persistence.Filter{"user_id": counterpartyID}).
			Return(nil, errs.ErrNotFound)

		txn, err := svc.Transfer(ctx, testUserID, counterpartyID, 100, "")

		assert.Nil(t, txn)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "Counterparty wallet not found.", errs.MessageOf(err))
	})

	t.Run("Stale sender guard is retried and writes exactly one pair of legs", func(t *testing.T) {
		m := ledgerMocks{
			users:        persistencemocks.NewMockRepository[entity.User](t),
			wallets:      persistencemocks.NewMockRepository[entity.Wallet](t),
			transactions: persistencemocks.NewMockRepository[entity.Transaction](t),
			cache:        persistencemocks.NewMockWalletCache(t),
		}
		session := &recordingSession{}
		runner := database.NewTxManager(session, database.NewErrorClassifier(), database.RetryConfig{
			MaxRetries:   1,
			InitialDelay: time.Millisecond,
			MaxDelay:     time.Millisecond,
		}, logger.NewNoopLogger())
		svc := NewService(m.users, m.wallets, m.transactions, runner, m.cache, systemID, logger.NewNoopLogger())

		expectUserAndWallet(m, testUserID, 5000)
		expectCounterparty(m, 100)

		// First attempt loses the race on the sender's guarded update; the
		// scope rolls back and the retry replays it cleanly.
		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": testUserID, "balance": int64(5000)},
			map[string]any{"balance": int64(4900)},
		).Return(errs.ErrNotFound).Once()
		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": testUserID, "balance": int64(5000)},
			map[string]any{"balance": int64(4900)},
		).Return(nil).Once()
		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": counterpartyID, "balance": int64(100)},
			map[string]any{"balance": int64(200)},
		).Return(nil).Once()

		var legs []*entity.Transaction
		m.transactions.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, txn *entity.Transaction) {
				legs = append(legs, txn)
			}).Return(nil).Times(2)

		m.cache.EXPECT().Invalidate(mock.Anything, testUserID, counterpartyID).Once()

		debit, err := svc.Transfer(ctx, testUserID, counterpartyID, 100, "")

		require.NoError(t, err)
		require.Len(t, legs, 2)
		assert.Same(t, legs[0], debit)
		assert.Equal(t, entity.TypeDebit, legs[0].Type)
		assert.Equal(t, entity.TypeCredit, legs[1].Type)
		assert.Equal(t, legs[0].TransactionReference, legs[1].TransactionReference)

		assert.Equal(t, 2, session.begins)
		assert.Equal(t, 1, session.rollbacks)
		assert.Equal(t, 1, session.commits)
	})

	t.Run("Second balance update failure aborts the scope", func(t *testing.T) {
		svc, m := newLedgerService(t)
		passthroughTx(m)
		expectUserAndWallet(m, testUserID, 5000)
		expectCounterparty(m, 100)

		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": testUserID, "balance": int64(5000)}, mock.Anything).Return(nil).Once()
		m.wallets.EXPECT().UpdateFields(mock.Anything,
			persistence.Filter{"user_id": counterpartyID, "balance": int64(100)}, mock.Anything).Return(errs.ErrNotFound).Once()

		txn, err := svc.Transfer(ctx, testUserID, counterpartyID, 100, "")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrStaleBalance)
		m.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
