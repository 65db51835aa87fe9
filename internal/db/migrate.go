package db

import (
	"delivery_orders/internal/config" // Application configuration
	"delivery_orders/internal/domain" // Importing domain models
	"fmt"                             // Error formatting

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/gorm"            // GORM ORM library
	"gorm.io/gorm/logger"     // GORM logger levels
)

// Dialector picks the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", "mysql":
		return mysql.Open(cfg.DSN()), nil // Default driver
	case "postgres":
		return postgres.Open(cfg.DSN()), nil // Alternate driver
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Open connects to the database with driver errors translated to gorm sentinels
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	level := logger.Warn // Only slow queries and errors in development
	if cfg.IsProd {
		level = logger.Error
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,                          // Map unique/foreign-key violations to gorm errors
		Logger:         logger.Default.LogMode(level), // GORM query logging
	})
}

// AutoMigrate creates the users and orders tables with their indexes and constraints
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Order{})
}

// Migrate performs automatic migration for the database schema
func Migrate(cfg *config.Config) {
	db, err := Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := AutoMigrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.WithField("driver", cfg.DBDriver).Info("Migration completed.") // Log successful migration
}
