package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the workbook store. By default this is a local
// sqlite file next to the binary; when DATABASE_URL is set the same schema
// lives in PostgreSQL instead (hosted deployments).
func ConnectDatabase(cfg *Config) error {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("Database connection established (postgres)")
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.WorkbookPath), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to open workbook %s: %w", cfg.WorkbookPath, err)
		}
		log.Printf("Workbook opened at %s", cfg.WorkbookPath)
	}

	DB = db
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
