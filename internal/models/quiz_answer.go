package models

// QuizAnswer - ответ квиза. Один ответ на вопрос: повторный ответ
// на тот же question_id заменяет предыдущий.
type QuizAnswer struct {
	BaseModel
	UserID     uint   `gorm:"not null;uniqueIndex:idx_quiz_answers_user_question" json:"user_id"`
	QuestionID string `gorm:"not null;uniqueIndex:idx_quiz_answers_user_question" json:"question_id"`
	Answer     string `gorm:"not null" json:"answer"`
}
