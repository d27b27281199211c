package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	walletUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/wallet"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/logger"
	coremocks "github.com/lendmark/demo-credit/mocks/port/core"
	persistencemocks "github.com/lendmark/demo-credit/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	users   *persistencemocks.MockRepository[entity.User]
	wallets *persistencemocks.MockRepository[entity.Wallet]
	risk    *coremocks.MockRiskChecker
}

func newAuthService(t *testing.T, policy RiskPolicy) (*Service, authMocks) {
	m := authMocks{
		users:   persistencemocks.NewMockRepository[entity.User](t),
		wallets: persistencemocks.NewMockRepository[entity.Wallet](t),
		risk:    coremocks.NewMockRiskChecker(t),
	}
	walletSvc := walletUseCase.NewService(m.users, m.wallets, nil, logger.NewNoopLogger())
	svc := NewService(m.users, walletSvc, m.risk, policy, logger.NewNoopLogger())
	return svc, m
}

func validInput() RegisterInput {
	return RegisterInput{
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
		FirstName: "Ada",
		LastName:  "Obi",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration provisions a wallet", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})
		input := validInput()

		m.users.EXPECT().GetOne(mock.Anything, persistence.Filter{"email": input.Email}).
			Return(nil, errs.ErrNotFound).Once()

		var createdID string
		m.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == input.Email &&
				u.Password != "" &&
				u.Password != input.Password &&
				u.Salt != ""
		})).Run(func(ctx context.Context, u *entity.User) {
			u.ID = "new-user-id"
			createdID = u.ID
		}).Return(nil).Once()

		// Wallet provisioning path
		m.users.EXPECT().GetByID(mock.Anything, "new-user-id").
			Return(&entity.User{ID: "new-user-id", Email: input.Email}, nil).Once()
		m.wallets.EXPECT().Create(mock.Anything, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.UserID == "new-user-id" && w.Balance == 0
		})).Return(nil).Once()

		// Final re-read joined with the wallet
		m.users.EXPECT().GetByID(mock.Anything, "new-user-id", "Wallet").
			Return(&entity.User{
				ID:     "new-user-id",
				Email:  input.Email,
				Wallet: &entity.Wallet{UserID: "new-user-id", Balance: 0},
			}, nil).Once()

		user, err := svc.Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, createdID, user.ID)
		require.NotNil(t, user.Wallet)
		assert.Equal(t, int64(0), user.Wallet.Balance)
	})

	t.Run("Duplicate email is a Conflict", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})
		input := validInput()

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).
			Return(&entity.User{ID: "existing", Email: input.Email}, nil).Once()

		user, err := svc.Register(ctx, input)

		assert.Nil(t, user)
		assert.Equal(t, http.StatusConflict, errs.StatusOf(err))
		assert.Equal(t, "User already exists.", errs.MessageOf(err))
	})

	t.Run("Race on insert still reports Conflict", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).Return(nil, errs.ErrNotFound).Once()
		m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateKey).Once()

		user, err := svc.Register(ctx, validInput())

		assert.Nil(t, user)
		assert.Equal(t, http.StatusConflict, errs.StatusOf(err))
	})

	t.Run("Blacklisted identity is declined", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{Enabled: true})
		input := validInput()

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).Return(nil, errs.ErrNotFound).Once()
		m.risk.EXPECT().IsBlacklisted(mock.Anything, input.Email).Return(true, nil).Once()

		user, err := svc.Register(ctx, input)

		assert.Nil(t, user)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "Registration declined.", errs.MessageOf(err))
		m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Risk check outage blocks registration", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{Enabled: true})

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).Return(nil, errs.ErrNotFound).Once()
		m.risk.EXPECT().IsBlacklisted(mock.Anything, mock.Anything).
			Return(false, errors.New("upstream timeout")).Once()

		user, err := svc.Register(ctx, validInput())

		assert.Nil(t, user)
		assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(err))
	})

	t.Run("Skip-domain bypasses the risk check", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{Enabled: true, SkipDomains: []string{"example.com"}})
		input := validInput()

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).Return(nil, errs.ErrNotFound).Once()
		m.users.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, u *entity.User) { u.ID = "u1" }).Return(nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1").
			Return(&entity.User{ID: "u1", Email: input.Email}, nil).Once()
		m.wallets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1", "Wallet").
			Return(&entity.User{ID: "u1"}, nil).Once()

		_, err := svc.Register(ctx, input)

		require.NoError(t, err)
		m.risk.AssertNotCalled(t, "IsBlacklisted", mock.Anything, mock.Anything)
	})

	t.Run("Wallet provisioning failure does not fail registration", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})
		input := validInput()

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).Return(nil, errs.ErrNotFound).Once()
		m.users.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, u *entity.User) { u.ID = "u1" }).Return(nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1").
			Return(&entity.User{ID: "u1", Email: input.Email}, nil).Once()
		m.wallets.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errors.New("wallets table unavailable")).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1", "Wallet").
			Return(&entity.User{ID: "u1", Email: input.Email, Wallet: nil}, nil).Once()

		user, err := svc.Register(ctx, input)

		require.NoError(t, err)
		assert.Nil(t, user.Wallet)
	})
}
