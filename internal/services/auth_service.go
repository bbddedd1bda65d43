package services

import (
	"fmt"

	"lintar_backend/internal/auth"
	"lintar_backend/internal/email"
	"lintar_backend/internal/logger"
	"lintar_backend/internal/models"
	"lintar_backend/internal/repositories"
	"lintar_backend/internal/services/dto"
	"lintar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(db *gorm.DB, userID uint) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	documentRepo     repositories.DocumentRepository
	consultationRepo repositories.ConsultationRepository
	quizAnswerRepo   repositories.QuizAnswerRepository
	selectedJobRepo  repositories.SelectedJobRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	documentRepo repositories.DocumentRepository,
	consultationRepo repositories.ConsultationRepository,
	quizAnswerRepo repositories.QuizAnswerRepository,
	selectedJobRepo repositories.SelectedJobRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		documentRepo:     documentRepo,
		consultationRepo: consultationRepo,
		quizAnswerRepo:   quizAnswerRepo,
		selectedJobRepo:  selectedJobRepo,
		emailProvider:    emailProvider,
	}
}

// Register - регистрация нового клиента.
// Ответы квиза и выбранная вакансия из запроса записываются
// в рамках той же операции, ровно один раз.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: auth.HashPassword(req.Password),
		Phone:        req.Phone,
		Country:      req.Country,
		Role:         models.UserRoleClient,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if apperrors.Is(err, repositories.ErrPhoneTaken) {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if len(req.QuizAnswers) > 0 {
		answers := make([]models.QuizAnswer, 0, len(req.QuizAnswers))
		for _, a := range req.QuizAnswers {
			answers = append(answers, models.QuizAnswer{
				UserID:     user.ID,
				QuestionID: a.QuestionID,
				Answer:     a.Answer,
			})
		}
		if err := s.quizAnswerRepo.UpsertMany(db, answers); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if req.SelectedJob != nil {
		job := &models.SelectedJob{
			UserID:   user.ID,
			JobID:    req.SelectedJob.JobID,
			JobTitle: req.SelectedJob.JobTitle,
		}
		if err := s.selectedJobRepo.Upsert(db, job); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	s.sendWelcomeEmail(user)

	return s.buildAuthResponse(db, user)
}

// Login - аутентификация с маршрутизацией по прогрессу анкеты
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	return s.buildAuthResponse(db, user)
}

// CurrentUser возвращает профиль по идентификатору из токена
func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	d := dto.ToUserDTO(user)
	return &d, nil
}

func (s *AuthServiceImpl) buildAuthResponse(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	redirectTo, err := s.resolveRedirect(db, user)
	if err != nil {
		// Ошибка проверки прогресса роняет вход целиком:
		// отправить клиента на неверный шаг хуже, чем вернуть 500
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		RedirectTo:  redirectTo,
		User:        dto.ToUserDTO(user),
	}, nil
}

// resolveRedirect определяет следующий шаг воронки:
// нет действующего паспорта - документы, нет консультации - запись,
// иначе личный кабинет. Менеджеры идут сразу в свою панель.
func (s *AuthServiceImpl) resolveRedirect(db *gorm.DB, user *models.User) (string, error) {
	if user.Role == models.UserRoleManager {
		return "/manager", nil
	}

	docs, err := s.documentRepo.FindByUserID(db, user.ID)
	if err != nil {
		return "", fmt.Errorf("check documents for user %d: %w", user.ID, err)
	}
	hasPassport := false
	for _, d := range docs {
		if d.Type == models.DocumentTypePassport && d.Status != models.DocumentStatusRejected {
			hasPassport = true
			break
		}
	}
	if !hasPassport {
		return "/documents", nil
	}

	_, err = s.consultationRepo.FindLatestByUserID(db, user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return "/consultation", nil
		}
		return "", fmt.Errorf("check consultation for user %d: %w", user.ID, err)
	}

	return "/client", nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	subject := "Добро пожаловать в Lintar Group"
	body := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p><p>Ваш личный кабинет создан. Следующий шаг - загрузка документов.</p>",
		user.Name,
	)
	if err := s.emailProvider.Send(user.Email, subject, body); err != nil {
		// Почта не должна ломать регистрацию
		logger.WithError(err).Warn("failed to send welcome email", "user_id", user.ID)
	}
}
