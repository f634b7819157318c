package model

import "time"

// Addon groups optional extras offered for a UOM.
type Addon struct {
	ID        uint   `gorm:"primaryKey"`
	UOMID     *uint  `gorm:"column:uom_id;index"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	AddonItems []AddonItem `gorm:"foreignKey:AddonID;constraint:OnDelete:CASCADE"`
}

func (Addon) TableName() string { return "addons" }

// AddonItem is a single selectable entry of an Addon.
type AddonItem struct {
	ID      uint   `gorm:"primaryKey"`
	AddonID uint   `gorm:"index;not null"`
	Name    string `gorm:"not null"`
}

func (AddonItem) TableName() string { return "addon_items" }
