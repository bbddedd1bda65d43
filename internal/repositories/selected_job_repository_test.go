package repositories

import (
	"testing"

	"lintar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedJobRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSelectedJobRepository()
	user := createTestUser(t, db, "job@x.com", "+10000000001")

	first := &models.SelectedJob{UserID: user.ID, JobID: "job-1", JobTitle: "Welder"}
	require.NoError(t, repo.Upsert(db, first))

	second := &models.SelectedJob{UserID: user.ID, JobID: "job-2", JobTitle: "Driver"}
	require.NoError(t, repo.Upsert(db, second))
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.SelectedJob{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "У клиента не больше одной выбранной вакансии")

	stored, err := repo.FindByUserID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "job-2", stored.JobID)
	assert.Equal(t, "Driver", stored.JobTitle)
}

func TestSelectedJobRepository_FindByUserID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSelectedJobRepository()

	_, err := repo.FindByUserID(db, 999)
	assert.ErrorIs(t, err, ErrSelectedJobNotFound)
}
