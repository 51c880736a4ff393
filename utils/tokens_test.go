package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(7, 3, "Reception")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, uint(3), claims.CompanyID)
	assert.Equal(t, "Reception", claims.Role)
	assert.Equal(t, "7", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestAccessTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateAccessToken(7, 3, "Reception")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateAccessToken(1, 1, "Admin")
	assert.Error(t, err)
}

func TestTokenTTLOverride(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "2h")
	assert.Equal(t, 2*time.Hour, tokenTTL())

	t.Setenv("JWT_EXPIRES_IN", "garbage")
	assert.Equal(t, 24*time.Hour, tokenTTL())
}
