package models

type UserRole string
type DocumentType string
type DocumentStatus string
type ConsultationType string
type ConsultationStatus string

const (
	UserRoleClient  UserRole = "client"
	UserRoleManager UserRole = "manager"

	DocumentTypePassport   DocumentType = "passport"
	DocumentTypeResume     DocumentType = "resume"
	DocumentTypeMedical    DocumentType = "medical"
	DocumentTypePhoto      DocumentType = "photo"
	DocumentTypeAdditional DocumentType = "additional"

	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusAccepted DocumentStatus = "accepted"
	DocumentStatusRejected DocumentStatus = "rejected"

	ConsultationTypeVideo ConsultationType = "video"
	ConsultationTypePhone ConsultationType = "phone"

	ConsultationStatusScheduled ConsultationStatus = "scheduled"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// DocumentTypes - полный набор типов документов анкеты
var DocumentTypes = []DocumentType{
	DocumentTypePassport,
	DocumentTypeResume,
	DocumentTypeMedical,
	DocumentTypePhoto,
	DocumentTypeAdditional,
}
