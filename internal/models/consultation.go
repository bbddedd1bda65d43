package models

type Consultation struct {
	BaseModel
	UserID uint               `gorm:"not null;index" json:"user_id"`
	Date   string             `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time   string             `gorm:"not null" json:"time"` // HH:MM
	Type   ConsultationType   `gorm:"type:varchar(10);not null" json:"type"`
	Status ConsultationStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
}
