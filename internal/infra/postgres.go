package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripforge/internal/config"
	"tripforge/internal/models/db_models"
	"tripforge/pkg/logger"
)

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {

	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		logger.Error("error connecting to database", logger.Err(err))
		return nil, err
	}

	if err := AutoMigrate(connectionPool); err != nil {
		logger.Error("error migrating database", logger.Err(err))
		return nil, err
	}

	return connectionPool, nil
}

// AutoMigrate creates or updates the schema for every aggregate table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Itinerary{},
		&db_models.DayPlan{},
		&db_models.Activity{},
		&db_models.AdminComment{},
		&db_models.Notification{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("error getting database instance", logger.Err(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing database connection", logger.Err(err))
	} else {
		logger.Info("database connection closed")
	}
}
