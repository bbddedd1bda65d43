package models

// SelectedJob - вакансия, выбранная клиентом до регистрации.
// У пользователя ровно одна: повторный выбор перезаписывает.
type SelectedJob struct {
	BaseModel
	UserID   uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	JobID    string `gorm:"not null" json:"job_id"`
	JobTitle string `gorm:"not null" json:"job_title"`
}
