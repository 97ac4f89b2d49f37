// Package db opens the database connection as configured
package db

import (
	"fmt"

	"twitchplanner/backend/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database (sqlite for local setups, postgres for
// deployments) and migrates the schema. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver
func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	dsn := viper.GetString("db.dsn")

	switch driver := viper.GetString("db.driver"); driver {
	case "postgres":
		dial = postgres.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Planning{}, model.StreamEvent{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
