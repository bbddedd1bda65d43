package services

import (
	"lintar_backend/internal/models"
	"lintar_backend/internal/repositories"
	"lintar_backend/internal/services/dto"
	"lintar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ClientService покрывает шаги анкеты клиента (квиз, вакансия)
// и менеджерский разбор клиентской базы.
type ClientService interface {
	SaveQuizAnswers(db *gorm.DB, userID uint, req *dto.SaveQuizAnswersRequest) ([]dto.QuizAnswerDTO, error)
	ListQuizAnswers(db *gorm.DB, userID uint) ([]dto.QuizAnswerDTO, error)
	SelectJob(db *gorm.DB, userID uint, req *dto.SelectJobRequest) (*dto.SelectedJobDTO, error)
	GetSelectedJob(db *gorm.DB, userID uint) (*dto.SelectedJobDTO, error)
	ListClients(db *gorm.DB) ([]dto.ClientSummaryDTO, error)
	GetClientDetail(db *gorm.DB, clientID uint) (*dto.ClientDetailDTO, error)
}

type ClientServiceImpl struct {
	userRepo         repositories.UserRepository
	documentRepo     repositories.DocumentRepository
	consultationRepo repositories.ConsultationRepository
	quizAnswerRepo   repositories.QuizAnswerRepository
	selectedJobRepo  repositories.SelectedJobRepository
}

func NewClientService(
	userRepo repositories.UserRepository,
	documentRepo repositories.DocumentRepository,
	consultationRepo repositories.ConsultationRepository,
	quizAnswerRepo repositories.QuizAnswerRepository,
	selectedJobRepo repositories.SelectedJobRepository,
) ClientService {
	return &ClientServiceImpl{
		userRepo:         userRepo,
		documentRepo:     documentRepo,
		consultationRepo: consultationRepo,
		quizAnswerRepo:   quizAnswerRepo,
		selectedJobRepo:  selectedJobRepo,
	}
}

// SaveQuizAnswers перезаписывает ответы по question_id, побеждает последний
func (s *ClientServiceImpl) SaveQuizAnswers(db *gorm.DB, userID uint, req *dto.SaveQuizAnswersRequest) ([]dto.QuizAnswerDTO, error) {
	answers := make([]models.QuizAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.QuizAnswer{
			UserID:     userID,
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}
	if err := s.quizAnswerRepo.UpsertMany(db, answers); err != nil {
		return nil, apperrors.InternalError(err)
	}

	saved, err := s.quizAnswerRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToQuizAnswerDTOs(saved), nil
}

func (s *ClientServiceImpl) ListQuizAnswers(db *gorm.DB, userID uint) ([]dto.QuizAnswerDTO, error) {
	answers, err := s.quizAnswerRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToQuizAnswerDTOs(answers), nil
}

// SelectJob фиксирует выбор вакансии, у клиента всегда не больше одной
func (s *ClientServiceImpl) SelectJob(db *gorm.DB, userID uint, req *dto.SelectJobRequest) (*dto.SelectedJobDTO, error) {
	job := &models.SelectedJob{
		UserID:   userID,
		JobID:    req.JobID,
		JobTitle: req.JobTitle,
	}
	if err := s.selectedJobRepo.Upsert(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToSelectedJobDTO(job), nil
}

func (s *ClientServiceImpl) GetSelectedJob(db *gorm.DB, userID uint) (*dto.SelectedJobDTO, error) {
	job, err := s.selectedJobRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSelectedJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.ToSelectedJobDTO(job), nil
}

// ListClients - сводка по клиентам для менеджерской панели
func (s *ClientServiceImpl) ListClients(db *gorm.DB) ([]dto.ClientSummaryDTO, error) {
	clients, err := s.userRepo.FindClients(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ClientSummaryDTO, 0, len(clients))
	for i := range clients {
		client := &clients[i]
		summary := dto.ClientSummaryDTO{User: dto.ToUserDTO(client)}

		docs, err := s.documentRepo.FindByUserID(db, client.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		summary.DocumentCount = len(docs)

		if _, err := s.consultationRepo.FindLatestByUserID(db, client.ID); err == nil {
			summary.HasConsultation = true
		} else if !apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return nil, apperrors.InternalError(err)
		}

		if job, err := s.selectedJobRepo.FindByUserID(db, client.ID); err == nil {
			summary.SelectedJobTitle = job.JobTitle
		} else if !apperrors.Is(err, repositories.ErrSelectedJobNotFound) {
			return nil, apperrors.InternalError(err)
		}

		out = append(out, summary)
	}
	return out, nil
}

// GetClientDetail собирает полную карточку клиента
func (s *ClientServiceImpl) GetClientDetail(db *gorm.DB, clientID uint) (*dto.ClientDetailDTO, error) {
	client, err := s.userRepo.FindByID(db, clientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if client.Role != models.UserRoleClient {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	detail := &dto.ClientDetailDTO{User: dto.ToUserDTO(client)}

	docs, err := s.documentRepo.FindByUserID(db, client.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	detail.Documents = dto.ToDocumentDTOs(docs)

	consultations, err := s.consultationRepo.FindByUserID(db, client.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	detail.Consultations = dto.ToConsultationDTOs(consultations)

	answers, err := s.quizAnswerRepo.FindByUserID(db, client.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	detail.QuizAnswers = dto.ToQuizAnswerDTOs(answers)

	if job, err := s.selectedJobRepo.FindByUserID(db, client.ID); err == nil {
		detail.SelectedJob = dto.ToSelectedJobDTO(job)
	} else if !apperrors.Is(err, repositories.ErrSelectedJobNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return detail, nil
}
