package wallet

import (
	"context"
	"net/http"
	"testing"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/lendmark/demo-credit/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletMocks struct {
	users   *persistencemocks.MockRepository[entity.User]
	wallets *persistencemocks.MockRepository[entity.Wallet]
	cache   *persistencemocks.MockWalletCache
}

func newWalletService(t *testing.T) (*Service, walletMocks) {
	m := walletMocks{
		users:   persistencemocks.NewMockRepository[entity.User](t),
		wallets: persistencemocks.NewMockRepository[entity.Wallet](t),
		cache:   persistencemocks.NewMockWalletCache(t),
	}
	svc := NewService(m.users, m.wallets, m.cache, logger.NewNoopLogger())
	return svc, m
}

func TestCreateWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Provisions a zero-balance wallet for the user", func(t *testing.T) {
		svc, m := newWalletService(t)

		m.users.EXPECT().GetByID(mock.Anything, "u1").
			Return(&entity.User{ID: "u1", Email: "ada@example.com"}, nil).Once()
		m.wallets.EXPECT().Create(mock.Anything, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.UserID == "u1" &&
				w.Email == "ada@example.com" &&
				w.Currency == entity.DefaultCurrency &&
				w.Balance == 0
		})).Return(nil).Once()

		w, err := svc.CreateWallet(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, int64(0), w.Balance)
		assert.Equal(t, entity.DefaultCurrency, w.Currency)
	})

	t.Run("Unknown user is rejected", func(t *testing.T) {
		svc, m := newWalletService(t)

		m.users.EXPECT().GetByID(mock.Anything, "ghost").
			Return(nil, errs.ErrNotFound).Once()

		w, err := svc.CreateWallet(ctx, "ghost")

		assert.Nil(t, w)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "User not found.", errs.MessageOf(err))
		m.wallets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit skips the database", func(t *testing.T) {
		svc, m := newWalletService(t)
		cached := &entity.Wallet{ID: "w1", UserID: "u1", Balance: 2500}

		m.cache.EXPECT().Get(mock.Anything, "u1").Return(cached, true).Once()

		w, err := svc.GetBalance(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, cached, w)
		m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		m.wallets.AssertNotCalled(t, "GetOne", mock.Anything, mock.Anything)
	})

	t.Run("Cache miss reads through and populates the cache", func(t *testing.T) {
		svc, m := newWalletService(t)
		stored := &entity.Wallet{ID: "w1", UserID: "u1", Balance: 2500}

		m.cache.EXPECT().Get(mock.Anything, "u1").Return(nil, false).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1").
			Return(&entity.User{ID: "u1"}, nil).Once()
		m.wallets.EXPECT().GetOne(mock.Anything, persistence.Filter{"user_id": "u1"}).
			Return(stored, nil).Once()
		m.cache.EXPECT().Set(mock.Anything, stored).Once()

		w, err := svc.GetBalance(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, int64(2500), w.Balance)
	})

	t.Run("Unknown user is rejected", func(t *testing.T) {
		svc, m := newWalletService(t)

		m.cache.EXPECT().Get(mock.Anything, "ghost").Return(nil, false).Once()
		m.users.EXPECT().GetByID(mock.Anything, "ghost").
			Return(nil, errs.ErrNotFound).Once()

		w, err := svc.GetBalance(ctx, "ghost")

		assert.Nil(t, w)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
	})

	t.Run("User without a wallet is rejected", func(t *testing.T) {
		svc, m := newWalletService(t)

		m.cache.EXPECT().Get(mock.Anything, "u1").Return(nil, false).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1").
			Return(&entity.User{ID: "u1"}, nil).Once()
		m.wallets.EXPECT().GetOne(mock.Anything, mock.Anything).
			Return(nil, errs.ErrNotFound).Once()

		w, err := svc.GetBalance(ctx, "u1")

		assert.Nil(t, w)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "Wallet not found for this user.", errs.MessageOf(err))
		m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}
