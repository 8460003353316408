package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTLMinutes: 60}
	user := &models.User{ID: 7, Email: "weaver@example.com"}

	token, err := GenerateToken(cfg, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "weaver@example.com", claims.Email)
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTLMinutes: 60}
	user := &models.User{ID: 7, Email: "weaver@example.com"}

	token, err := GenerateToken(cfg, user)
	require.NoError(t, err)

	_, err = ParseToken(&config.Config{JWTSecret: "other-secret"}, token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	_, err := ParseToken(cfg, "not-a-token")
	assert.Error(t, err)
}
