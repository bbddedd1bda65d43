package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// HashPassword создает SHA-256 hex дайджест пароля.
// Дайджест детерминированный: одинаковые пароли дают одинаковый хеш,
// поэтому проверка - простое сравнение строк.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPasswordHash проверяет пароль против сохраненного дайджеста
func CheckPasswordHash(password, hash string) bool {
	return HashPassword(password) == hash
}

// ValidatePassword проверяет сложность пароля
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
