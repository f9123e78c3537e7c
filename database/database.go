package database

import (
	"fmt"
	"log"

	"learnhub/config"
	"learnhub/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database and runs migrations. PostgreSQL is used when
// DATABASE_URL is configured; otherwise a local SQLite file keeps development
// and CI setups dependency-free. The handle is returned to the caller instead
// of being stored globally so every component receives its storage client
// explicitly.
func Connect() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if config.AppConfig.DBUrl != "" {
		db, err = gorm.Open(postgres.Open(config.AppConfig.DBUrl), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}
