package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Waer1/complex-product-CRUD/internal/infra"
	"github.com/Waer1/complex-product-CRUD/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with foreign keys enforced.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

func sampleProduct(name string) *model.Product {
	return &model.Product{
		Name: name,
		UOMs: []model.UOM{
			{
				Name:    "Box",
				Barcode: &model.UOMBarcode{Barcode: "111"},
				Image:   &model.UOMImage{URL: "http://img/box.jpg"},
				Addons: []model.Addon{
					{Name: "Sauce", AddonItems: []model.AddonItem{{Name: "Ketchup"}, {Name: "Mayo"}}},
				},
			},
			{
				Name:    "Piece",
				Barcode: &model.UOMBarcode{Barcode: "222"},
				Image:   &model.UOMImage{URL: "http://img/piece.jpg"},
				Addons:  []model.Addon{},
			},
		},
	}
}

func TestProductRepo_CreateAndFindByID_LoadsFullTree(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	p := sampleProduct("Burger")
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger", got.Name)
	require.Len(t, got.UOMs, 2)

	box := got.UOMs[0]
	assert.Equal(t, "Box", box.Name)
	require.NotNil(t, box.Barcode)
	assert.Equal(t, "111", box.Barcode.Barcode)
	require.NotNil(t, box.Image)
	assert.Equal(t, "http://img/box.jpg", box.Image.URL)
	require.Len(t, box.Addons, 1)
	require.Len(t, box.Addons[0].AddonItems, 2)
	assert.Equal(t, "Ketchup", box.Addons[0].AddonItems[0].Name)
	assert.Equal(t, "Mayo", box.Addons[0].AddonItems[1].Name)

	assert.Equal(t, "Piece", got.UOMs[1].Name)
	assert.Empty(t, got.UOMs[1].Addons)
}

func TestProductRepo_FindByID_NotFound(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductRepo_FindByName(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleProduct("Pizza")))

	got, err := repo.FindByName(ctx, "Pizza")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Name)

	_, err = repo.FindByName(ctx, "Pasta")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductRepo_DuplicateNameIsTranslated(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Product{Name: "Taco"}))

	err := repo.Create(ctx, &model.Product{Name: "Taco"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestProductRepo_FindAll_OrderedByID(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleProduct("First")))
	require.NoError(t, repo.Create(ctx, sampleProduct("Second")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
	assert.Len(t, all[1].UOMs, 2)
}

func TestProductRepo_SaveTx_UpdatesNestedRecordsInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := sampleProduct("Wrap")
	require.NoError(t, repo.Create(ctx, p))

	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	barcodeID := loaded.UOMs[0].Barcode.ID
	loaded.UOMs[0].Barcode.Barcode = "999"
	loaded.UOMs[0].Addons[0].AddonItems[1].Name = "Mustard"

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, repo.LockTx(tx, p.ID))
		return repo.SaveTx(tx, loaded)
	}))

	after, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, barcodeID, after.UOMs[0].Barcode.ID)
	assert.Equal(t, "999", after.UOMs[0].Barcode.Barcode)
	assert.Equal(t, "Mustard", after.UOMs[0].Addons[0].AddonItems[1].Name)
	assert.Equal(t, "Ketchup", after.UOMs[0].Addons[0].AddonItems[0].Name)

	var barcodes int64
	require.NoError(t, db.Model(&model.UOMBarcode{}).Count(&barcodes).Error)
	assert.Equal(t, int64(2), barcodes)
}

func TestProductRepo_LockTx_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	err := db.Transaction(func(tx *gorm.DB) error { return repo.LockTx(tx, 42) })
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductRepo_DeleteTx_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := sampleProduct("Soup")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.DeleteTx(db.WithContext(ctx), p.ID))

	_, err := repo.FindByID(ctx, p.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var items int64
	require.NoError(t, db.Model(&model.AddonItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestUOMRepo_StandaloneLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUOMRepository(db)
	ctx := context.Background()

	u := &model.UOM{
		Name:    "Bag",
		Barcode: &model.UOMBarcode{Barcode: "b-1"},
		Image:   &model.UOMImage{URL: "http://img/bag.jpg"},
		Addons:  []model.Addon{{Name: "Extra", AddonItems: []model.AddonItem{{Name: "Cheese"}}}},
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.Nil(t, u.ProductID)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "b-1", got.Barcode.Barcode)
	require.Len(t, got.Addons, 1)
	assert.Equal(t, "Cheese", got.Addons[0].AddonItems[0].Name)

	got.Image.URL = "http://img/bag2.jpg"
	require.NoError(t, repo.Save(ctx, got))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "http://img/bag2.jpg", all[0].Image.URL)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.FindByID(ctx, u.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var addons int64
	require.NoError(t, db.Model(&model.Addon{}).Count(&addons).Error)
	assert.Zero(t, addons)
}

func TestAddonRepo_StandaloneLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddonRepository(db)
	ctx := context.Background()

	a := &model.Addon{Name: "Drinks", AddonItems: []model.AddonItem{{Name: "Cola"}, {Name: "Water"}}}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got.AddonItems, 2)

	got.Name = "Beverages"
	got.AddonItems[0].Name = "Lemonade"
	require.NoError(t, repo.Save(ctx, got))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Beverages", all[0].Name)
	assert.Equal(t, "Lemonade", all[0].AddonItems[0].Name)

	require.NoError(t, repo.Delete(ctx, a.ID))
	var items int64
	require.NoError(t, db.Model(&model.AddonItem{}).Count(&items).Error)
	assert.Zero(t, items)
}
