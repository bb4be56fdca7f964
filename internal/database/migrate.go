package database

import (
	"photobook_backend/internal/logger"
	"photobook_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate прогоняет миграции всех таблиц приложения.
func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Booking{},
		&models.Notification{},
		&models.Review{},
	)
	if err != nil {
		return err
	}

	logger.Info("✅ Database migrations completed")
	return nil
}
