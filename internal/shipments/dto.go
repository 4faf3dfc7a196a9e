package shipments

import (
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Summary is the wire shape for a shipment in list responses.
type Summary struct {
	ID            int64               `json:"id"`
	OrderID       int64               `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	SupplierName  string              `json:"supplier_name"`
	OrderDate     types.Date          `json:"order_date"`
	ShipmentDate  types.Date          `json:"shipment_date"`
	DeliveryDays  int                 `json:"delivery_days"`
	DeliverySpeed enums.DeliverySpeed `json:"delivery_speed"`
}

// Item is one product line inside a shipment payload.
type Item struct {
	ID          int64  `json:"shipment_detail_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Detail is the full shipment payload.
type Detail struct {
	Summary
	Items []Item `json:"items"`
}

// LateRow is the late-shipments projection: an order that has not
// shipped at all, or one whose delivery took too long.
type LateRow struct {
	OrderID       int64               `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	OrderDate     types.Date          `json:"order_date"`
	ShipmentID    *int64              `json:"shipment_id"`
	ShipmentDate  *types.Date         `json:"shipment_date"`
	DeliveryDays  *int                `json:"delivery_days"`
	DeliverySpeed enums.DeliverySpeed `json:"delivery_speed"`
}

// ItemInput is one requested shipment line.
type ItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CreateInput carries a new shipment request. ShipmentDate defaults to
// today.
type CreateInput struct {
	OrderID      int64       `json:"order_id" validate:"required,gt=0"`
	ShipmentDate *types.Date `json:"shipment_date"`
	Items        []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateInput mutates a shipment's date and lines. The order is fixed
// at creation.
type UpdateInput struct {
	ShipmentDate *types.Date `json:"shipment_date"`
	Items        []ItemInput `json:"items" validate:"omitempty,min=1,dive"`
}
