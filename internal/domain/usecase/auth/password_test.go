package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash and verify round trip", func(t *testing.T) {
		salt, err := generateSalt()
		require.NoError(t, err)

		hash := hashPassword("s3cretpass", salt)

		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "s3cretpass", hash)
		assert.True(t, verifyPassword("s3cretpass", salt, hash))
	})

	t.Run("Wrong password fails verification", func(t *testing.T) {
		salt, err := generateSalt()
		require.NoError(t, err)

		hash := hashPassword("s3cretpass", salt)

		assert.False(t, verifyPassword("s3cretpass ", salt, hash))
		assert.False(t, verifyPassword("S3cretpass", salt, hash))
		assert.False(t, verifyPassword("", salt, hash))
	})

	t.Run("Distinct salts produce distinct hashes", func(t *testing.T) {
		saltA, err := generateSalt()
		require.NoError(t, err)
		saltB, err := generateSalt()
		require.NoError(t, err)

		assert.NotEqual(t, saltA, saltB)
		assert.NotEqual(t, hashPassword("same", saltA), hashPassword("same", saltB))
	})
}

func TestRiskPolicyApplies(t *testing.T) {
	tests := []struct {
		name   string
		policy RiskPolicy
		email  string
		want   bool
	}{
		{"Disabled policy never applies", RiskPolicy{}, "ada@example.com", false},
		{"Enabled policy applies by default", RiskPolicy{Enabled: true}, "ada@example.com", true},
		{"Skip domain is exempt", RiskPolicy{Enabled: true, SkipDomains: []string{"example.com"}}, "ada@example.com", false},
		{"Skip domain match is case insensitive", RiskPolicy{Enabled: true, SkipDomains: []string{"Example.COM"}}, "ada@example.com", false},
		{"Other domains still screened", RiskPolicy{Enabled: true, SkipDomains: []string{"example.com"}}, "ada@other.ng", true},
		{"Identity without a domain is screened", RiskPolicy{Enabled: true, SkipDomains: []string{"example.com"}}, "08012345678", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.applies(tt.email))
		})
	}
}
