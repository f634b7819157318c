package repository

import (
	"context"

	"github.com/Waer1/complex-product-CRUD/internal/model"

	"gorm.io/gorm"
)

// UOMRepository defines data access for UOMs and their barcode, image and addons.
type UOMRepository interface {
	Create(ctx context.Context, u *model.UOM) error
	FindAll(ctx context.Context) ([]model.UOM, error)
	FindByID(ctx context.Context, id uint) (*model.UOM, error)
	Save(ctx context.Context, u *model.UOM) error
	Delete(ctx context.Context, id uint) error

	CreateTx(tx *gorm.DB, u *model.UOM) error
	DeleteTx(tx *gorm.DB, id uint) error
}

type uomRepo struct{ db *gorm.DB }

func NewUOMRepository(db *gorm.DB) UOMRepository { return &uomRepo{db: db} }

func preloadUOM(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Barcode").
		Preload("Image").
		Preload("Addons", byID("addons")).
		Preload("Addons.AddonItems", byID("addon_items"))
}

func (r *uomRepo) Create(ctx context.Context, u *model.UOM) error {
	return r.CreateTx(r.db.WithContext(ctx), u)
}

func (r *uomRepo) CreateTx(tx *gorm.DB, u *model.UOM) error {
	return tx.Create(u).Error
}

func (r *uomRepo) FindAll(ctx context.Context) ([]model.UOM, error) {
	var uoms []model.UOM
	err := preloadUOM(r.db.WithContext(ctx)).Order("uoms.id ASC").Find(&uoms).Error
	return uoms, err
}

func (r *uomRepo) FindByID(ctx context.Context, id uint) (*model.UOM, error) {
	var u model.UOM
	if err := preloadUOM(r.db.WithContext(ctx)).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *uomRepo) Save(ctx context.Context, u *model.UOM) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(u).Error
}

func (r *uomRepo) Delete(ctx context.Context, id uint) error {
	return r.DeleteTx(r.db.WithContext(ctx), id)
}

func (r *uomRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.UOM{}, id).Error
}
