package dto

import (
	"time"

	"lintar_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Country  string `json:"country" binding:"required"`

	// Ответы квиза и выбранная вакансия, накопленные до регистрации.
	// Переносятся в БД одним махом вместе с созданием пользователя.
	QuizAnswers []QuizAnswerItem `json:"quiz_answers,omitempty" binding:"omitempty,dive"`
	SelectedJob *SelectedJobItem `json:"selected_job,omitempty"`
}

// QuizAnswerItem - один ответ квиза
type QuizAnswerItem struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SelectedJobItem - выбранная вакансия
type SelectedJobItem struct {
	JobID    string `json:"job_id" binding:"required"`
	JobTitle string `json:"job_title" binding:"required"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - ответ с токеном и маршрутом продолжения
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	RedirectTo  string  `json:"redirect_to"`
	User        UserDTO `json:"user"`
}

// UserDTO - базовая информация о пользователе (без пароля)
type UserDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Country   string          `json:"country"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToUserDTO собирает DTO из модели, никогда не включая хэш пароля
func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Country:   u.Country,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
