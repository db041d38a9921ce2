package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devboost/internal/model"
)

// NewMySQL returns a connected GORM DB instance with SQL logging silenced;
// request logging happens at the HTTP layer.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the account schema. When reset is set the
// accounts table is dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		if err := db.Migrator().DropTable(&model.Account{}); err != nil {
			return fmt.Errorf("drop accounts: %w", err)
		}
	}
	if err := db.AutoMigrate(&model.Account{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
