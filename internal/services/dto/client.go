package dto

import "lintar_backend/internal/models"

// SaveQuizAnswersRequest - сохранение ответов квиза авторизованным клиентом
type SaveQuizAnswersRequest struct {
	Answers []QuizAnswerItem `json:"answers" binding:"required,min=1,dive"`
}

// SelectJobRequest - выбор вакансии авторизованным клиентом
type SelectJobRequest struct {
	JobID    string `json:"job_id" binding:"required"`
	JobTitle string `json:"job_title" binding:"required"`
}

// QuizAnswerDTO - ответ квиза в ответах API
type QuizAnswerDTO struct {
	ID         uint   `json:"id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

func ToQuizAnswerDTOs(items []models.QuizAnswer) []QuizAnswerDTO {
	out := make([]QuizAnswerDTO, 0, len(items))
	for _, a := range items {
		out = append(out, QuizAnswerDTO{ID: a.ID, QuestionID: a.QuestionID, Answer: a.Answer})
	}
	return out
}

// SelectedJobDTO - выбранная вакансия в ответах API
type SelectedJobDTO struct {
	ID       uint   `json:"id"`
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
}

func ToSelectedJobDTO(j *models.SelectedJob) *SelectedJobDTO {
	if j == nil {
		return nil
	}
	return &SelectedJobDTO{ID: j.ID, JobID: j.JobID, JobTitle: j.JobTitle}
}

// ClientSummaryDTO - строка в списке клиентов у менеджера
type ClientSummaryDTO struct {
	User             UserDTO `json:"user"`
	DocumentCount    int     `json:"document_count"`
	HasConsultation  bool    `json:"has_consultation"`
	SelectedJobTitle string  `json:"selected_job_title,omitempty"`
}

// ClientDetailDTO - полная карточка клиента для менеджера
type ClientDetailDTO struct {
	User          UserDTO           `json:"user"`
	Documents     []DocumentDTO     `json:"documents"`
	Consultations []ConsultationDTO `json:"consultations"`
	QuizAnswers   []QuizAnswerDTO   `json:"quiz_answers"`
	SelectedJob   *SelectedJobDTO   `json:"selected_job,omitempty"`
}
