package repository

import (
	"context"

	"github.com/Waer1/complex-product-CRUD/internal/model"

	"gorm.io/gorm"
)

// AddonRepository defines data access for addons and their items.
type AddonRepository interface {
	Create(ctx context.Context, a *model.Addon) error
	FindAll(ctx context.Context) ([]model.Addon, error)
	FindByID(ctx context.Context, id uint) (*model.Addon, error)
	Save(ctx context.Context, a *model.Addon) error
	Delete(ctx context.Context, id uint) error

	CreateTx(tx *gorm.DB, a *model.Addon) error
	DeleteTx(tx *gorm.DB, id uint) error
}

type addonRepo struct{ db *gorm.DB }

func NewAddonRepository(db *gorm.DB) AddonRepository { return &addonRepo{db: db} }

func (r *addonRepo) Create(ctx context.Context, a *model.Addon) error {
	return r.CreateTx(r.db.WithContext(ctx), a)
}

func (r *addonRepo) CreateTx(tx *gorm.DB, a *model.Addon) error {
	return tx.Create(a).Error
}

func (r *addonRepo) FindAll(ctx context.Context) ([]model.Addon, error) {
	var addons []model.Addon
	err := r.db.WithContext(ctx).
		Preload("AddonItems", byID("addon_items")).
		Order("addons.id ASC").
		Find(&addons).Error
	return addons, err
}

func (r *addonRepo) FindByID(ctx context.Context, id uint) (*model.Addon, error) {
	var a model.Addon
	if err := r.db.WithContext(ctx).Preload("AddonItems", byID("addon_items")).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addonRepo) Save(ctx context.Context, a *model.Addon) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(a).Error
}

func (r *addonRepo) Delete(ctx context.Context, id uint) error {
	return r.DeleteTx(r.db.WithContext(ctx), id)
}

func (r *addonRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Addon{}, id).Error
}
