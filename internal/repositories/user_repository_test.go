package repositories

import (
	"testing"

	"lintar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := &models.User{
		Name:         "Jane",
		Email:        "jane@x.com",
		PasswordHash: "hash",
		Phone:        "+10000000001",
		Country:      "US",
		Role:         models.UserRoleClient,
	}
	require.NoError(t, repo.Create(db, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByEmail(db, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Jane", found.Name)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	createTestUser(t, db, "dup@x.com", "+10000000001")

	err := repo.Create(db, &models.User{
		Name:         "Second",
		Email:        "dup@x.com",
		PasswordHash: "hash",
		Phone:        "+10000000002",
		Role:         models.UserRoleClient,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Вторая строка не создается
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_Create_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	createTestUser(t, db, "first@x.com", "+10000000001")

	err := repo.Create(db, &models.User{
		Name:         "Second",
		Email:        "second@x.com",
		PasswordHash: "hash",
		Phone:        "+10000000001",
		Role:         models.UserRoleClient,
	})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	_, err := repo.FindByEmail(db, "ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	_, err := repo.FindByID(db, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindClients_ExcludesManagers(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	createTestUser(t, db, "client@x.com", "+10000000001")

	manager := &models.User{
		Name:         "Boss",
		Email:        "boss@x.com",
		PasswordHash: "hash",
		Phone:        "+10000000002",
		Role:         models.UserRoleManager,
	}
	require.NoError(t, db.Create(manager).Error)

	clients, err := repo.FindClients(db)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "client@x.com", clients[0].Email)

	count, err := repo.CountClients(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
