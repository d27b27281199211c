package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the payload carried inside a session token
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 session tokens
type Manager struct {
	secret       []byte
	maxAge       time.Duration
	timeProvider coreport.TimeProvider
}

// NewManager creates a token manager. maxAge bounds the token lifetime.
func NewManager(secret string, maxAge time.Duration, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		secret:       []byte(secret),
		maxAge:       maxAge,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed session token for the user
func (m *Manager) Issue(userID string) (string, error) {
	now := m.timeProvider.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and returns its claims
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// MaxAge returns the configured token lifetime
func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}
