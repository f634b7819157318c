package service

import (
	"context"
	"testing"

	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/infra"
	"github.com/Waer1/complex-product-CRUD/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ── Test wiring ──────────────────────────────────────────────────────────────

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

type testServices struct {
	db      *gorm.DB
	product ProductService
	uom     UOMService
	addon   AddonService
}

// buildServices wires every service against a fresh database with caching disabled.
func buildServices(t *testing.T) testServices {
	db := setupTestDB(t)
	productRepo := repository.NewProductRepository(db)
	uomRepo := repository.NewUOMRepository(db)
	addonRepo := repository.NewAddonRepository(db)
	return testServices{
		db:      db,
		product: NewProductService(productRepo, uomRepo, addonRepo, nil),
		uom:     NewUOMService(uomRepo, nil),
		addon:   NewAddonService(addonRepo, nil),
	}
}

func ptr[T any](v T) *T { return &v }

func uomSpec(name, barcode, url string, addons ...dto.CreateAddonRequest) dto.CreateUOMRequest {
	if addons == nil {
		addons = []dto.CreateAddonRequest{}
	}
	return dto.CreateUOMRequest{
		Name:       name,
		UOMBarcode: &dto.CreateUOMBarcodeRequest{Barcode: barcode},
		UOMImage:   &dto.CreateUOMImageRequest{URL: url},
		Addons:     addons,
	}
}

func addonSpec(name string, items ...string) dto.CreateAddonRequest {
	a := dto.CreateAddonRequest{Name: name, AddonItems: []dto.CreateAddonItemRequest{}}
	for _, it := range items {
		a.AddonItems = append(a.AddonItems, dto.CreateAddonItemRequest{Name: it})
	}
	return a
}

// seedP1 creates the canonical product P1 / U1 / A1 / I1.
func seedP1(t *testing.T, svc ProductService) *dto.ProductResponse {
	t.Helper()
	p, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "P1",
		UOMs: []dto.CreateUOMRequest{
			uomSpec("U1", "123", "http://x/y.jpg", addonSpec("A1", "I1")),
		},
	})
	require.NoError(t, err)
	return p
}
