package repositories

import (
	"errors"

	"lintar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSelectedJobNotFound = errors.New("selected job not found")

type SelectedJobRepository interface {
	Upsert(db *gorm.DB, job *models.SelectedJob) error
	FindByUserID(db *gorm.DB, userID uint) (*models.SelectedJob, error)
}

type SelectedJobRepositoryImpl struct{}

func NewSelectedJobRepository() SelectedJobRepository {
	return &SelectedJobRepositoryImpl{}
}

// Upsert - одна выбранная вакансия на пользователя, повторный выбор перезаписывает
func (r *SelectedJobRepositoryImpl) Upsert(db *gorm.DB, job *models.SelectedJob) error {
	var existing models.SelectedJob
	err := db.Where("user_id = ?", job.UserID).First(&existing).Error
	if err == nil {
		result := db.Model(&existing).Updates(map[string]interface{}{
			"job_id":    job.JobID,
			"job_title": job.JobTitle,
		})
		if result.Error != nil {
			return result.Error
		}
		job.ID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(job).Error
}

func (r *SelectedJobRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) (*models.SelectedJob, error) {
	var job models.SelectedJob
	err := db.First(&job, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSelectedJobNotFound
		}
		return nil, err
	}
	return &job, nil
}
