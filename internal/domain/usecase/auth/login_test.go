package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	storedUser := func() *entity.User {
		salt, err := generateSalt()
		require.NoError(t, err)
		return &entity.User{
			ID:       "u1",
			Email:    "ada@example.com",
			Salt:     salt,
			Password: hashPassword("correct-horse-battery", salt),
		}
	}

	t.Run("Valid credentials return the joined user", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})
		stored := storedUser()

		m.users.EXPECT().GetOne(mock.Anything, persistence.Filter{"email": stored.Email}).
			Return(stored, nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, "u1", "Wallet").
			Return(&entity.User{
				ID:     "u1",
				Email:  stored.Email,
				Wallet: &entity.Wallet{UserID: "u1", Balance: 1500},
			}, nil).Once()

		user, err := svc.Login(ctx, stored.Email, "correct-horse-battery")

		require.NoError(t, err)
		require.NotNil(t, user.Wallet)
		assert.Equal(t, int64(1500), user.Wallet.Balance)
	})

	t.Run("Unknown email is rejected", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).
			Return(nil, errs.ErrNotFound).Once()

		user, err := svc.Login(ctx, "nobody@example.com", "whatever")

		assert.Nil(t, user)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "Invalid login credentials.", errs.MessageOf(err))
	})

	t.Run("Wrong password gets the same response as an unknown email", func(t *testing.T) {
		svc, m := newAuthService(t, RiskPolicy{})
		stored := storedUser()

		m.users.EXPECT().GetOne(mock.Anything, mock.Anything).Return(stored, nil).Once()

		user, err := svc.Login(ctx, stored.Email, "wrong-password")

		assert.Nil(t, user)
		assert.Equal(t, http.StatusForbidden, errs.StatusOf(err))
		assert.Equal(t, "Invalid login credentials.", errs.MessageOf(err))
		m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})
}
