package database

import (
	"fmt"

	"lintar_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open открывает встроенную SQLite БД и применяет схему.
// Возвращает явный handle: никакого глобального состояния, вызывающий
// сам управляет временем жизни (создается один раз при старте и
// передается дальше через middleware).
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// У SQLite каждое соединение с ":memory:" видит свою собственную БД,
	// поэтому пул ужимается до одного соединения
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get *sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей.
// Семантика "create if not exists": повторный вызов безопасен.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.QuizAnswer{},
		&models.SelectedJob{},
		&models.Document{},
		&models.Consultation{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
