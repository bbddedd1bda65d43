package services

import (
	"fmt"

	"lintar_backend/internal/email"
	"lintar_backend/internal/logger"
	"lintar_backend/internal/models"
	"lintar_backend/internal/repositories"
	"lintar_backend/internal/services/dto"
	"lintar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ConsultationService interface {
	Book(db *gorm.DB, userID uint, req *dto.BookConsultationRequest) (*dto.ConsultationDTO, error)
	ListByUser(db *gorm.DB, userID uint) ([]dto.ConsultationDTO, error)
	Latest(db *gorm.DB, userID uint) (*dto.ConsultationDTO, error)
	UpdateStatus(db *gorm.DB, consultationID uint, req *dto.UpdateConsultationStatusRequest) (*dto.ConsultationDTO, error)
}

type ConsultationServiceImpl struct {
	consultationRepo repositories.ConsultationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ConsultationService {
	return &ConsultationServiceImpl{
		consultationRepo: consultationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

// Book записывает клиента на консультацию и шлет письмо-подтверждение
func (s *ConsultationServiceImpl) Book(db *gorm.DB, userID uint, req *dto.BookConsultationRequest) (*dto.ConsultationDTO, error) {
	consultation := &models.Consultation{
		UserID: userID,
		Date:   req.Date,
		Time:   req.Time,
		Type:   req.Type,
		Status: models.ConsultationStatusScheduled,
	}
	if err := s.consultationRepo.Create(db, consultation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendConfirmationEmail(db, consultation)

	d := dto.ToConsultationDTO(consultation)
	return &d, nil
}

func (s *ConsultationServiceImpl) ListByUser(db *gorm.DB, userID uint) ([]dto.ConsultationDTO, error) {
	items, err := s.consultationRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToConsultationDTOs(items), nil
}

// Latest возвращает последнюю по времени создания запись клиента
func (s *ConsultationServiceImpl) Latest(db *gorm.DB, userID uint) (*dto.ConsultationDTO, error) {
	consultation, err := s.consultationRepo.FindLatestByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	d := dto.ToConsultationDTO(consultation)
	return &d, nil
}

func (s *ConsultationServiceImpl) UpdateStatus(db *gorm.DB, consultationID uint, req *dto.UpdateConsultationStatusRequest) (*dto.ConsultationDTO, error) {
	if err := s.consultationRepo.UpdateStatus(db, consultationID, req.Status); err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	var consultation models.Consultation
	if err := db.First(&consultation, "id = ?", consultationID).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	d := dto.ToConsultationDTO(&consultation)
	return &d, nil
}

func (s *ConsultationServiceImpl) sendConfirmationEmail(db *gorm.DB, consultation *models.Consultation) {
	user, err := s.userRepo.FindByID(db, consultation.UserID)
	if err != nil {
		logger.WithError(err).Warn("failed to load user for consultation email", "user_id", consultation.UserID)
		return
	}

	kind := "видеозвонок"
	if consultation.Type == models.ConsultationTypePhone {
		kind = "телефонный звонок"
	}
	subject := "Консультация забронирована"
	body := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p><p>Ваша консультация (%s) назначена на %s в %s.</p>",
		user.Name, kind, consultation.Date, consultation.Time,
	)
	if err := s.emailProvider.Send(user.Email, subject, body); err != nil {
		// Письмо не должно ломать бронирование
		logger.WithError(err).Warn("failed to send consultation email", "user_id", user.ID)
	}
}
