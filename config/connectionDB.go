package config

import (
	"fmt"

	"github.com/rajib3777/academia/internal/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectionDb(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disable prepared statements completely
	}), &gorm.Config{
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("error connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&entity.OTPVerification{},
		&entity.SMSHistory{},
		&entity.Role{},
		&entity.User{},
	); err != nil {
		return nil, fmt.Errorf("error migrate database: %w", err)
	}
	return db, nil
}
