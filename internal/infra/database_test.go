package infra

import (
	"testing"

	"github.com/Waer1/complex-product-CRUD/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"products", "uoms", "uom_barcodes", "uom_images", "addons", "addon_items"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	// Running twice is a no-op.
	require.NoError(t, Migrate(db))
}

func TestMigrate_DeleteCascadesToDescendants(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Migrate(db))

	p := model.Product{
		Name: "P1",
		UOMs: []model.UOM{{
			Name:    "U1",
			Barcode: &model.UOMBarcode{Barcode: "123"},
			Image:   &model.UOMImage{URL: "http://x/y.jpg"},
			Addons:  []model.Addon{{Name: "A1", AddonItems: []model.AddonItem{{Name: "I1"}}}},
		}},
	}
	require.NoError(t, db.Create(&p).Error)

	require.NoError(t, db.Delete(&model.Product{}, p.ID).Error)

	for _, m := range []any{&model.UOM{}, &model.UOMBarcode{}, &model.UOMImage{}, &model.Addon{}, &model.AddonItem{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Zero(t, n)
	}
}
