package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters; per-user random salts are stored next to the hash.
const (
	saltLength   = 16
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// generateSalt returns a hex-encoded random salt.
func generateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// hashPassword derives an argon2id key from the password and salt.
func hashPassword(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(key)
}

// verifyPassword re-derives the key and compares in constant time.
func verifyPassword(password, salt, hash string) bool {
	expected := hashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(hash)) == 1
}
