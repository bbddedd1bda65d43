package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_Deterministic(t *testing.T) {
	h1 := HashPassword("abc123")
	h2 := HashPassword("abc123")
	assert.Equal(t, h1, h2, "Одинаковые пароли должны давать одинаковый хеш")
}

func TestHashPassword_DistinctInputs(t *testing.T) {
	h1 := HashPassword("abc123")
	h2 := HashPassword("abc124")
	assert.NotEqual(t, h1, h2, "Разные пароли должны давать разные хеши")
}

func TestHashPassword_Format(t *testing.T) {
	h := HashPassword("abc123")
	assert.Len(t, h, 64, "SHA-256 hex дайджест - 64 символа")
	assert.Regexp(t, "^[0-9a-f]{64}$", h)
}

func TestCheckPasswordHash(t *testing.T) {
	hash := HashPassword("secret-password")

	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("secret-password", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("abc123"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"), "Пароль короче 6 символов должен отклоняться")
	assert.Error(t, ValidatePassword(""))
}
