package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item offered by a supplier. Price is the current
// unit price; orders are valued against it at read time.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;not null"`
	Description *string         `gorm:"column:description"`
	Category    *string         `gorm:"column:category"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	SupplierID  *int64          `gorm:"column:supplier_id"`
	Supplier    *Supplier       `gorm:"foreignKey:SupplierID"`
	Inventory   *InventoryItem  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
