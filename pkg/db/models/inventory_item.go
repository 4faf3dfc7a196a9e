package models

import "time"

// InventoryItem tracks the on-hand quantity per product.
type InventoryItem struct {
	ProductID int64     `gorm:"column:product_id;primaryKey"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
	Quantity  int       `gorm:"column:quantity;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
