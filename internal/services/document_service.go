package services

import (
	"lintar_backend/internal/models"
	"lintar_backend/internal/repositories"
	"lintar_backend/internal/services/dto"
	"lintar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DocumentService interface {
	Upload(db *gorm.DB, userID uint, req *dto.UploadDocumentRequest) (*dto.DocumentDTO, error)
	ListByUser(db *gorm.DB, userID uint) ([]dto.DocumentDTO, error)
	UpdateStatus(db *gorm.DB, documentID uint, req *dto.UpdateDocumentStatusRequest) (*dto.DocumentDTO, error)
}

type DocumentServiceImpl struct {
	documentRepo repositories.DocumentRepository
}

func NewDocumentService(documentRepo repositories.DocumentRepository) DocumentService {
	return &DocumentServiceImpl{documentRepo: documentRepo}
}

// Upload сохраняет документ клиента. Повторная загрузка того же типа
// заменяет файл и сбрасывает статус на pending, вторая строка не появляется.
func (s *DocumentServiceImpl) Upload(db *gorm.DB, userID uint, req *dto.UploadDocumentRequest) (*dto.DocumentDTO, error) {
	doc := &models.Document{
		UserID:   userID,
		Type:     req.Type,
		FilePath: req.FilePath,
		Status:   models.DocumentStatusPending,
	}
	if err := s.documentRepo.Create(db, doc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	d := dto.ToDocumentDTO(doc)
	return &d, nil
}

func (s *DocumentServiceImpl) ListByUser(db *gorm.DB, userID uint) ([]dto.DocumentDTO, error) {
	docs, err := s.documentRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToDocumentDTOs(docs), nil
}

// UpdateStatus - решение менеджера по документу
func (s *DocumentServiceImpl) UpdateStatus(db *gorm.DB, documentID uint, req *dto.UpdateDocumentStatusRequest) (*dto.DocumentDTO, error) {
	if err := s.documentRepo.UpdateStatus(db, documentID, req.Status); err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	doc, err := s.documentRepo.FindByID(db, documentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	d := dto.ToDocumentDTO(doc)
	return &d, nil
}
