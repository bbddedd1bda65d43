package repositories

import (
	"errors"

	"lintar_backend/internal/models"

	"gorm.io/gorm"
)

type QuizAnswerRepository interface {
	Upsert(db *gorm.DB, answer *models.QuizAnswer) error
	UpsertMany(db *gorm.DB, answers []models.QuizAnswer) error
	FindByUserID(db *gorm.DB, userID uint) ([]models.QuizAnswer, error)
}

type QuizAnswerRepositoryImpl struct{}

func NewQuizAnswerRepository() QuizAnswerRepository {
	return &QuizAnswerRepositoryImpl{}
}

// Upsert - один ответ на (user_id, question_id), последний побеждает
func (r *QuizAnswerRepositoryImpl) Upsert(db *gorm.DB, answer *models.QuizAnswer) error {
	var existing models.QuizAnswer
	err := db.Where("user_id = ? AND question_id = ?", answer.UserID, answer.QuestionID).
		First(&existing).Error
	if err == nil {
		result := db.Model(&existing).Update("answer", answer.Answer)
		if result.Error != nil {
			return result.Error
		}
		answer.ID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(answer).Error
}

func (r *QuizAnswerRepositoryImpl) UpsertMany(db *gorm.DB, answers []models.QuizAnswer) error {
	for i := range answers {
		if err := r.Upsert(db, &answers[i]); err != nil {
			return err
		}
	}
	return nil
}

// FindByUserID возвращает ответы в порядке вставки
func (r *QuizAnswerRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) ([]models.QuizAnswer, error) {
	var answers []models.QuizAnswer
	err := db.Where("user_id = ?", userID).Order("id ASC").Find(&answers).Error
	return answers, err
}
