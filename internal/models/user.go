package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Phone        string   `gorm:"uniqueIndex;not null" json:"phone"`
	Country      string   `gorm:"not null" json:"country"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'client'" json:"role"`

	// Relations
	Documents     []Document     `gorm:"foreignKey:UserID" json:"-"`
	Consultations []Consultation `gorm:"foreignKey:UserID" json:"-"`
	QuizAnswers   []QuizAnswer   `gorm:"foreignKey:UserID" json:"-"`
	SelectedJob   *SelectedJob   `gorm:"foreignKey:UserID" json:"-"`
}
