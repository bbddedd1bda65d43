package repositories

import (
	"testing"

	"lintar_backend/internal/database"
	"lintar_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open(":memory:")
	require.NoError(t, err, "Не удалось открыть тестовую БД")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, phone string) *models.User {
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "irrelevant",
		Phone:        phone,
		Country:      "KZ",
		Role:         models.UserRoleClient,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
