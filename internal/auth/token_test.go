package auth

import (
	"testing"
	"time"

	"lintar_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenConfig(t *testing.T, ttlMinutes int) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTokenConfig(t, 60)

	token, err := GenerateToken(42, "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "lintar_backend", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()), "Срок действия должен быть в будущем")
}

func TestParseToken_WrongSecret(t *testing.T) {
	setupTokenConfig(t, 60)

	token, err := GenerateToken(1, "client")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"

	_, err = ParseToken(token)
	assert.Error(t, err, "Токен с чужой подписью должен отклоняться")
}

func TestParseToken_Expired(t *testing.T) {
	setupTokenConfig(t, 60)

	now := time.Now()
	claims := &Claims{
		UserID: 7,
		Role:   "client",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
			Issuer:    "lintar_backend",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWT.Secret))
	require.NoError(t, err)

	_, err = ParseToken(expired)
	assert.Error(t, err, "Просроченный токен должен отклоняться")
}

func TestParseToken_Garbage(t *testing.T) {
	setupTokenConfig(t, 60)

	_, err := ParseToken("not-a-jwt-at-all")
	assert.Error(t, err)
}
