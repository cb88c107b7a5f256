package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mahir-soa/FYP/internal/infrastructure/repositories"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all persisted tables
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBExpense{},
		&repositories.DBSubscription{},
		&repositories.DBFare{},
		&repositories.DBConversation{},
		&repositories.DBMessage{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
