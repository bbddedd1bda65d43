package validator

import (
	"log"

	"lintar_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации,
// основанные на перечислениях из models/statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка конфигурации - не запускаемся
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-document-type", validateDocumentType)
	mustRegister("is-document-status", validateDocumentStatus)
	mustRegister("is-consultation-type", validateConsultationType)
	mustRegister("is-consultation-status", validateConsultationStatus)
}

func validateDocumentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	for _, t := range models.DocumentTypes {
		if value == string(t) {
			return true
		}
	}
	return false
}

func validateDocumentStatus(fl validator.FieldLevel) bool {
	switch models.DocumentStatus(fl.Field().String()) {
	case "", models.DocumentStatusPending, models.DocumentStatusAccepted, models.DocumentStatusRejected:
		return true
	}
	return false
}

func validateConsultationType(fl validator.FieldLevel) bool {
	switch models.ConsultationType(fl.Field().String()) {
	case "", models.ConsultationTypeVideo, models.ConsultationTypePhone:
		return true
	}
	return false
}

func validateConsultationStatus(fl validator.FieldLevel) bool {
	switch models.ConsultationStatus(fl.Field().String()) {
	case "", models.ConsultationStatusScheduled, models.ConsultationStatusCompleted, models.ConsultationStatusCancelled:
		return true
	}
	return false
}
