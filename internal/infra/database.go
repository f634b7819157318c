package infra

import (
	"fmt"

	"github.com/Waer1/complex-product-CRUD/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and, when autoMigrate
// is set, creates or updates the product tree tables.
// TranslateError is enabled so unique violations surface as gorm.ErrDuplicatedKey.
func NewDatabase(dsn string, autoMigrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("AutoMigrate: %w", err)
		}
	}

	return db, nil
}

// Migrate creates the tables in dependency order. Foreign keys carry
// ON DELETE CASCADE from products down to addon items.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.UOM{},
		&model.UOMBarcode{},
		&model.UOMImage{},
		&model.Addon{},
		&model.AddonItem{},
	)
}
