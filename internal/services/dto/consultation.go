package dto

import (
	"time"

	"lintar_backend/internal/models"
)

// BookConsultationRequest - бронирование консультации
type BookConsultationRequest struct {
	Date string                  `json:"date" binding:"required" validate:"datetime=2006-01-02"`
	Time string                  `json:"time" binding:"required" validate:"datetime=15:04"`
	Type models.ConsultationType `json:"type" binding:"required" validate:"is-consultation-type"`
}

// UpdateConsultationStatusRequest - смена статуса консультации менеджером
type UpdateConsultationStatusRequest struct {
	Status models.ConsultationStatus `json:"status" binding:"required" validate:"is-consultation-status"`
}

// ConsultationDTO - консультация в ответах API
type ConsultationDTO struct {
	ID        uint                      `json:"id"`
	UserID    uint                      `json:"user_id"`
	Date      string                    `json:"date"`
	Time      string                    `json:"time"`
	Type      models.ConsultationType   `json:"type"`
	Status    models.ConsultationStatus `json:"status"`
	CreatedAt time.Time                 `json:"created_at"`
}

func ToConsultationDTO(cons *models.Consultation) ConsultationDTO {
	return ConsultationDTO{
		ID:        cons.ID,
		UserID:    cons.UserID,
		Date:      cons.Date,
		Time:      cons.Time,
		Type:      cons.Type,
		Status:    cons.Status,
		CreatedAt: cons.CreatedAt,
	}
}

func ToConsultationDTOs(items []models.Consultation) []ConsultationDTO {
	out := make([]ConsultationDTO, 0, len(items))
	for i := range items {
		out = append(out, ToConsultationDTO(&items[i]))
	}
	return out
}
