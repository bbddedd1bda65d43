package handlers

import (
	"lintar_backend/internal/services"
	"lintar_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	DocumentHandler     *DocumentHandler
	ConsultationHandler *ConsultationHandler
	ClientHandler       *ClientHandler
	ManagerHandler      *ManagerHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		DocumentHandler:     NewDocumentHandler(base, sc.DocumentService),
		ConsultationHandler: NewConsultationHandler(base, sc.ConsultationService),
		ClientHandler:       NewClientHandler(base, sc.ClientService),
		ManagerHandler: NewManagerHandler(
			base, sc.ClientService, sc.DocumentService, sc.ConsultationService,
		),
	}
}
