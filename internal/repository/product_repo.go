package repository

import (
	"context"

	"github.com/Waer1/complex-product-CRUD/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for the product aggregate.
// Every read returns the full tree: UOMs with barcode, image, addons and addon items.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)

	// Used inside transactions; callers must pass the tx instance
	CreateTx(tx *gorm.DB, p *model.Product) error
	FindByIDTx(tx *gorm.DB, id uint) (*model.Product, error)
	FindByNameTx(tx *gorm.DB, name string) (*model.Product, error)

	// LockTx takes a row lock on the product so concurrent updates of the same
	// aggregate serialize. Dialects without row locks ignore the clause.
	LockTx(tx *gorm.DB, id uint) error

	// SaveTx writes the product row and every loaded descendant in one pass.
	SaveTx(tx *gorm.DB, p *model.Product) error
	DeleteTx(tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

// preloadTree eagerly loads the whole subtree below a product, ordered by id.
func preloadTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("UOMs", byID("uoms")).
		Preload("UOMs.Barcode").
		Preload("UOMs.Image").
		Preload("UOMs.Addons", byID("addons")).
		Preload("UOMs.Addons.AddonItems", byID("addon_items"))
}

func byID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Order(table + ".id ASC") }
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.CreateTx(r.db.WithContext(ctx), p)
}

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := preloadTree(r.db.WithContext(ctx)).Order("products.id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	return r.FindByIDTx(r.db.WithContext(ctx), id)
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Product, error) {
	var p model.Product
	if err := preloadTree(tx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return r.FindByNameTx(r.db.WithContext(ctx), name)
}

func (r *productRepo) FindByNameTx(tx *gorm.DB, name string) (*model.Product, error) {
	var p model.Product
	if err := tx.Where("name = ?", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) LockTx(tx *gorm.DB, id uint) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&model.Product{}, id).Error
}

func (r *productRepo) SaveTx(tx *gorm.DB, p *model.Product) error {
	return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *productRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Product{}, id).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
