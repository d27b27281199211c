package token

import (
	"testing"
	"time"

	coremocks "github.com/lendmark/demo-credit/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenClock(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(at).Maybe()
	return tp
}

func TestManager(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Issue and parse round trip", func(t *testing.T) {
		m := NewManager("test-secret", time.Hour, frozenClock(t, now))

		signed, err := m.Issue("user-1")
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		claims, err := m.Parse(signed)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		issuer := NewManager("test-secret", time.Hour, frozenClock(t, now))
		signed, err := issuer.Issue("user-1")
		require.NoError(t, err)

		later := NewManager("test-secret", time.Hour, frozenClock(t, now.Add(2*time.Hour)))
		claims, err := later.Parse(signed)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour, frozenClock(t, now))
		signed, err := other.Issue("user-1")
		require.NoError(t, err)

		m := NewManager("test-secret", time.Hour, frozenClock(t, now))
		claims, err := m.Parse(signed)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Malformed token is rejected", func(t *testing.T) {
		m := NewManager("test-secret", time.Hour, frozenClock(t, now))

		for _, bad := range []string{"", "not-a-token", "a.b.c"} {
			claims, err := m.Parse(bad)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		}
	})

	t.Run("Token without a user id is rejected", func(t *testing.T) {
		m := NewManager("test-secret", time.Hour, frozenClock(t, now))

		signed, err := m.Issue("")
		require.NoError(t, err)

		claims, err := m.Parse(signed)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MaxAge reports the configured lifetime", func(t *testing.T) {
		m := NewManager("test-secret", 72*time.Hour, frozenClock(t, now))
		assert.Equal(t, 72*time.Hour, m.MaxAge())
	})
}
