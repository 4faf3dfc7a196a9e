package models

import (
	"time"

	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Order is a customer purchase. Its status, total, and amount paid are
// derived from the related shipment, details, and payments rather than
// stored.
type Order struct {
	ID         int64         `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID int64         `gorm:"column:customer_id;not null"`
	Customer   *Customer     `gorm:"foreignKey:CustomerID"`
	SupplierID int64         `gorm:"column:supplier_id;not null"`
	Supplier   *Supplier     `gorm:"foreignKey:SupplierID"`
	OrderDate  types.Date    `gorm:"column:order_date;not null"`
	Details    []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipment   *Shipment     `gorm:"foreignKey:OrderID"`
	Payments   []Payment     `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderDetail is one product line within an order.
type OrderDetail struct {
	ID        int64    `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int64    `gorm:"column:order_id;not null"`
	ProductID int64    `gorm:"column:product_id;not null"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Quantity  int      `gorm:"column:quantity;not null"`
}
