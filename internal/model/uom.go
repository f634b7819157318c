package model

import "time"

// UOM is a unit-of-measure variant of a product. ProductID is nil for a UOM
// created on its own and not yet attached to a product.
type UOM struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID *uint  `gorm:"index"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Barcode *UOMBarcode `gorm:"foreignKey:UOMID;constraint:OnDelete:CASCADE"`
	Image   *UOMImage   `gorm:"foreignKey:UOMID;constraint:OnDelete:CASCADE"`
	Addons  []Addon     `gorm:"foreignKey:UOMID;constraint:OnDelete:CASCADE"`
}

func (UOM) TableName() string { return "uoms" }

// UOMBarcode is owned one-to-one by a UOM.
type UOMBarcode struct {
	ID      uint   `gorm:"primaryKey"`
	UOMID   uint   `gorm:"column:uom_id;uniqueIndex;not null"`
	Barcode string `gorm:"not null"`
}

func (UOMBarcode) TableName() string { return "uom_barcodes" }

// UOMImage is owned one-to-one by a UOM.
type UOMImage struct {
	ID    uint   `gorm:"primaryKey"`
	UOMID uint   `gorm:"column:uom_id;uniqueIndex;not null"`
	URL   string `gorm:"column:url;not null"`
}

func (UOMImage) TableName() string { return "uom_images" }
