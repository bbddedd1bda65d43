package services

import (
	"lintar_backend/internal/email"
	"lintar_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	DocumentService     DocumentService
	ConsultationService ConsultationService
	ClientService       ClientService
	EmailProvider       email.Provider
}

// NewServiceContainer связывает репозитории и сервисы
func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	documentRepo := repositories.NewDocumentRepository()
	consultationRepo := repositories.NewConsultationRepository()
	quizAnswerRepo := repositories.NewQuizAnswerRepository()
	selectedJobRepo := repositories.NewSelectedJobRepository()

	return &ServiceContainer{
		AuthService: NewAuthService(
			userRepo, documentRepo, consultationRepo,
			quizAnswerRepo, selectedJobRepo, emailProvider,
		),
		DocumentService: NewDocumentService(documentRepo),
		ConsultationService: NewConsultationService(
			consultationRepo, userRepo, emailProvider,
		),
		ClientService: NewClientService(
			userRepo, documentRepo, consultationRepo,
			quizAnswerRepo, selectedJobRepo,
		),
		EmailProvider: emailProvider,
	}
}
