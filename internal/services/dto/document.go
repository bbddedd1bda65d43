package dto

import (
	"time"

	"lintar_backend/internal/models"
)

// UploadDocumentRequest - загрузка (или повторная загрузка) документа
type UploadDocumentRequest struct {
	Type     models.DocumentType `json:"type" binding:"required" validate:"is-document-type"`
	FilePath string              `json:"file_path" binding:"required"`
}

// UpdateDocumentStatusRequest - смена статуса документа менеджером
type UpdateDocumentStatusRequest struct {
	Status models.DocumentStatus `json:"status" binding:"required" validate:"is-document-status"`
}

// DocumentDTO - документ в ответах API
type DocumentDTO struct {
	ID         uint                  `json:"id"`
	UserID     uint                  `json:"user_id"`
	Type       models.DocumentType   `json:"type"`
	FilePath   string                `json:"file_path"`
	Status     models.DocumentStatus `json:"status"`
	UploadedAt time.Time             `json:"uploaded_at"`
}

func ToDocumentDTO(d *models.Document) DocumentDTO {
	return DocumentDTO{
		ID:         d.ID,
		UserID:     d.UserID,
		Type:       d.Type,
		FilePath:   d.FilePath,
		Status:     d.Status,
		UploadedAt: d.UploadedAt,
	}
}

func ToDocumentDTOs(docs []models.Document) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(docs))
	for i := range docs {
		out = append(out, ToDocumentDTO(&docs[i]))
	}
	return out
}
