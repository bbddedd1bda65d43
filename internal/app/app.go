package app

import (
	"errors"
	"fmt"

	"lintar_backend/internal/auth"
	"lintar_backend/internal/config"
	"lintar_backend/internal/database"
	"lintar_backend/internal/email"
	"lintar_backend/internal/handlers"
	"lintar_backend/internal/logger"
	"lintar_backend/internal/middleware"
	"lintar_backend/internal/models"
	"lintar_backend/internal/routes"
	"lintar_backend/internal/services"
	"lintar_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Opening database...", "dsn", cfg.Database.DSN)
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	logger.Info("Database ready")

	if err := seedFirstManager(db, cfg); err != nil {
		// Без менеджера панель разбора заявок мертва - не стартуем
		logger.Fatal("Failed to seed first manager user", "error", err)
	}

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный HTTP стек поверх готового подключения
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	emailProvider := email.NewProvider(cfg)
	if !cfg.Email.Enabled {
		logger.Warn("Email sending disabled, using no-op provider")
	}

	serviceContainer := services.NewServiceContainer(emailProvider)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstManager заводит первую менеджерскую учетку из конфигурации.
// Если запись уже есть, ничего не делает.
func seedFirstManager(db *gorm.DB, cfg *config.Config) error {
	managerEmail := cfg.FirstManagerEmail
	managerPassword := cfg.FirstManagerPassword

	if managerEmail == "" || managerPassword == "" {
		logger.Warn("FIRST_MANAGER_EMAIL or FIRST_MANAGER_PASSWORD is not set. Skipping manager seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", managerEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Manager user already exists. Skipping creation.", "email", managerEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for manager user: %w", result.Error)
	}

	name := cfg.FirstManagerName
	if name == "" {
		name = "Manager"
	}

	manager := &models.User{
		Name:         name,
		Email:        managerEmail,
		PasswordHash: auth.HashPassword(managerPassword),
		Role:         models.UserRoleManager,
	}
	if err := db.Create(manager).Error; err != nil {
		return fmt.Errorf("failed to create manager user: %w", err)
	}

	logger.Info("First manager user created", "email", managerEmail)
	return nil
}
