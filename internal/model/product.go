package model

import "time"

// Product is the aggregate root of the catalog tree. Deleting it cascades to every UOM below.
type Product struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UOMs []UOM `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }
