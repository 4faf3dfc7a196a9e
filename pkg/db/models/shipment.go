package models

import (
	"time"

	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Shipment records the fulfillment of an order. At most one shipment
// exists per order; the supplier is the one on the order itself.
type Shipment struct {
	ID           int64            `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID      int64            `gorm:"column:order_id;not null;uniqueIndex:uq_shipments_order_id"`
	Order        *Order           `gorm:"foreignKey:OrderID"`
	ShipmentDate types.Date       `gorm:"column:shipment_date;not null"`
	Details      []ShipmentDetail `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// ShipmentDetail is one product line within a shipment.
type ShipmentDetail struct {
	ID         int64    `gorm:"column:id;primaryKey;autoIncrement"`
	ShipmentID int64    `gorm:"column:shipment_id;not null"`
	ProductID  int64    `gorm:"column:product_id;not null"`
	Product    *Product `gorm:"foreignKey:ProductID"`
	Quantity   int      `gorm:"column:quantity;not null"`
}
