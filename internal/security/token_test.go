package security_test

import (
	"testing"
	"time"

	"carrental-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)

	token, err := manager.GenerateAccessToken(42, "admin@example.com", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID) // unique token id
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, -time.Minute)

	token, err := manager.GenerateAccessToken(1, "user@example.com", false)
	assert.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)
	other := security.NewTokenManager("another-secret-another-secret-xx", time.Hour)

	token, err := manager.GenerateAccessToken(1, "user@example.com", false)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
