package repositories

import (
	"errors"
	"time"

	"lintar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(db *gorm.DB, doc *models.Document) error
	FindByUserID(db *gorm.DB, userID uint) ([]models.Document, error)
	FindByID(db *gorm.DB, id uint) (*models.Document, error)
	UpdateStatus(db *gorm.DB, id uint, status models.DocumentStatus) error
}

type DocumentRepositoryImpl struct{}

func NewDocumentRepository() DocumentRepository {
	return &DocumentRepositoryImpl{}
}

// Create - upsert по естественному ключу (user_id, type).
// Повторная загрузка документа того же типа перезаписывает файл,
// сбрасывает статус и обновляет отметку времени.
func (r *DocumentRepositoryImpl) Create(db *gorm.DB, doc *models.Document) error {
	if doc.Status == "" {
		doc.Status = models.DocumentStatusPending
	}

	var existing models.Document
	err := db.Where("user_id = ? AND type = ?", doc.UserID, doc.Type).First(&existing).Error
	if err == nil {
		result := db.Model(&existing).Updates(map[string]interface{}{
			"file_path":   doc.FilePath,
			"status":      doc.Status,
			"uploaded_at": time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		doc.ID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := db.Where("user_id = ?", userID).Order("uploaded_at DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Document, error) {
	var doc models.Document
	err := db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// UpdateStatus - безусловная перезапись статуса по первичному ключу.
// Валидность значения проверяется на границе запроса, не здесь.
func (r *DocumentRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.DocumentStatus) error {
	result := db.Model(&models.Document{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
