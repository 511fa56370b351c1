package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := HashPassword("correct-horse", bcrypt.MinCost)
		assert.NoError(t, err)
		assert.NotEqual(t, "correct-horse", hash)
		assert.True(t, CheckPasswordHash("correct-horse", hash))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := HashPassword("correct-horse", bcrypt.MinCost)
		assert.NoError(t, err)
		assert.False(t, CheckPasswordHash("battery-staple", hash))
	})

	t.Run("out of range cost falls back to the default", func(t *testing.T) {
		hash, err := HashPassword("correct-horse", 99)
		assert.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		assert.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestSessionToken(t *testing.T) {
	const secret = "test-secret"

	t.Run("round trip returns the session id", func(t *testing.T) {
		token, err := GenerateSessionToken("session-123", secret, time.Minute)
		assert.NoError(t, err)

		sessionID, err := ParseSessionToken(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("wrong secret fails verification", func(t *testing.T) {
		token, err := GenerateSessionToken("session-123", secret, time.Minute)
		assert.NoError(t, err)

		_, err = ParseSessionToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("tampered token fails verification", func(t *testing.T) {
		token, err := GenerateSessionToken("session-123", secret, time.Minute)
		assert.NoError(t, err)

		_, err = ParseSessionToken(token+"x", secret)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateSessionToken("session-123", secret, -time.Minute)
		assert.NoError(t, err)

		_, err = ParseSessionToken(token, secret)
		assert.Error(t, err)
	})
}
