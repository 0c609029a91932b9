package database

import (
	"fmt"

	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

// Models - все таблицы сервиса в порядке зависимостей
func Models() []interface{} {
	return []interface{}{
		&models.Profile{},
		&models.Job{},
		&models.Worker{},
		&models.Review{},
		&models.Application{},
		&models.MatchRun{},
	}
}

// AutoMigrate создает/обновляет таблицы для локальной разработки и тестов
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	logger.Info("AutoMigrate completed", "tables", len(Models()))
	return nil
}
