package models

import "time"

// Document - документ анкеты. Не больше одной записи на (user_id, type):
// повторная загрузка того же типа перезаписывает существующую.
type Document struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_documents_user_type" json:"user_id"`
	Type       DocumentType   `gorm:"type:varchar(20);not null;uniqueIndex:idx_documents_user_type" json:"type"`
	FilePath   string         `gorm:"not null" json:"file_path"`
	Status     DocumentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	UploadedAt time.Time      `gorm:"autoCreateTime" json:"uploaded_at"`
}
