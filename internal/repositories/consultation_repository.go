package repositories

import (
	"errors"

	"lintar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrConsultationNotFound = errors.New("consultation not found")

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *models.Consultation) error
	FindLatestByUserID(db *gorm.DB, userID uint) (*models.Consultation, error)
	FindByUserID(db *gorm.DB, userID uint) ([]models.Consultation, error)
	UpdateStatus(db *gorm.DB, id uint, status models.ConsultationStatus) error
}

type ConsultationRepositoryImpl struct{}

func NewConsultationRepository() ConsultationRepository {
	return &ConsultationRepositoryImpl{}
}

func (r *ConsultationRepositoryImpl) Create(db *gorm.DB, consultation *models.Consultation) error {
	if consultation.Status == "" {
		consultation.Status = models.ConsultationStatusScheduled
	}
	return db.Create(consultation).Error
}

// FindLatestByUserID возвращает последнюю консультацию пользователя.
// Схема допускает несколько записей; "последняя побеждает" - явное
// правило вместо неопределенного выбора первой попавшейся строки.
func (r *ConsultationRepositoryImpl) FindLatestByUserID(db *gorm.DB, userID uint) (*models.Consultation, error) {
	var consultation models.Consultation
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *ConsultationRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&consultations).Error
	return consultations, err
}

func (r *ConsultationRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.ConsultationStatus) error {
	result := db.Model(&models.Consultation{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConsultationNotFound
	}
	return nil
}
