package auth_test

import (
	"testing"
	"time"

	"github.com/emateapp/emate/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	token, err := tm.Generate("user-123", "engineer@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "engineer@example.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	other := auth.NewTokenManager("other_secret", time.Hour)

	token, err := tm.Generate("user-123", "engineer@example.com")
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", -time.Minute)

	token, err := tm.Generate("user-123", "engineer@example.com")
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
