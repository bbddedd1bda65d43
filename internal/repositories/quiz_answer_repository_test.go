package repositories

import (
	"testing"

	"lintar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizAnswerRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAnswerRepository()
	user := createTestUser(t, db, "quiz@x.com", "+10000000001")

	first := &models.QuizAnswer{UserID: user.ID, QuestionID: "q1", Answer: "yes"}
	require.NoError(t, repo.Upsert(db, first))

	second := &models.QuizAnswer{UserID: user.ID, QuestionID: "q1", Answer: "no"}
	require.NoError(t, repo.Upsert(db, second))
	assert.Equal(t, first.ID, second.ID)

	answers, err := repo.FindByUserID(db, user.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1, "На вопрос хранится один ответ")
	assert.Equal(t, "no", answers[0].Answer, "Последний ответ побеждает")
}

func TestQuizAnswerRepository_UpsertMany(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizAnswerRepository()
	user := createTestUser(t, db, "quiz@x.com", "+10000000001")

	batch := []models.QuizAnswer{
		{UserID: user.ID, QuestionID: "q1", Answer: "a"},
		{UserID: user.ID, QuestionID: "q2", Answer: "b"},
		{UserID: user.ID, QuestionID: "q3", Answer: "c"},
	}
	require.NoError(t, repo.UpsertMany(db, batch))

	// Повторная отправка меняет один ответ, не плодя строк
	require.NoError(t, repo.UpsertMany(db, []models.QuizAnswer{
		{UserID: user.ID, QuestionID: "q2", Answer: "b2"},
	}))

	answers, err := repo.FindByUserID(db, user.ID)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, "q1", answers[0].QuestionID)
	assert.Equal(t, "b2", answers[1].Answer)
	assert.Equal(t, "c", answers[2].Answer)
}
