package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hurairaz/sqlite-crud-api/models"
)

// ConnectToDB opens the single-file SQLite database at path and returns
// a connection handle. Foreign-key enforcement is switched on so the
// items→users cascade constraint is live.
func ConnectToDB(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Set logger to Silent to avoid logging every query in production.
		// Use logger.Info for development.
		Logger: logger.Default.LogMode(logger.Silent),
		// Translate driver errors so callers can match
		// gorm.ErrDuplicatedKey on unique-constraint violations.
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids SQLITE_BUSY
	// under concurrent handlers.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// CreateTables creates the users and items tables if they are absent.
// Existing tables are never altered.
func CreateTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Item{},
	)
}
