package routes

import (
	"lintar_backend/internal/handlers"
	"lintar_backend/internal/middleware"
	"lintar_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	api := ginRouter.Group("/api/v1")
	{
		// Публичные маршруты
		appHandlers.AuthHandler.RegisterRoutes(api)

		// Профиль текущего пользователя
		me := api.Group("/auth")
		me.Use(middleware.AuthMiddleware())
		{
			me.GET("/me", appHandlers.AuthHandler.Me)
		}

		// Кабинет клиента
		client := api.Group("/client")
		client.Use(middleware.AuthMiddleware())
		{
			client.POST("/documents", appHandlers.DocumentHandler.Upload)
			client.GET("/documents", appHandlers.DocumentHandler.List)

			client.POST("/consultations", appHandlers.ConsultationHandler.Book)
			client.GET("/consultations", appHandlers.ConsultationHandler.List)
			client.GET("/consultations/latest", appHandlers.ConsultationHandler.Latest)

			client.PUT("/quiz-answers", appHandlers.ClientHandler.SaveQuizAnswers)
			client.GET("/quiz-answers", appHandlers.ClientHandler.ListQuizAnswers)
			client.PUT("/selected-job", appHandlers.ClientHandler.SelectJob)
			client.GET("/selected-job", appHandlers.ClientHandler.GetSelectedJob)
		}

		// Панель менеджера
		manager := api.Group("/manager")
		manager.Use(middleware.AuthMiddleware())
		manager.Use(middleware.RoleMiddleware(models.UserRoleManager))
		{
			manager.GET("/clients", appHandlers.ManagerHandler.ListClients)
			manager.GET("/clients/:id", appHandlers.ManagerHandler.GetClientDetail)
			manager.PUT("/documents/:id/status", appHandlers.ManagerHandler.UpdateDocumentStatus)
			manager.PUT("/consultations/:id/status", appHandlers.ManagerHandler.UpdateConsultationStatus)
		}
	}
}
