package orders

import (
	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Filters describe the inputs supported by the orders list.
type Filters struct {
	Status     *enums.OrderStatus
	CustomerID *int64
	SupplierID *int64
	DateFrom   *types.Date
	DateTo     *types.Date
}

// Summary exposes the aggregated fields returned in the orders list.
type Summary struct {
	ID            int64             `json:"id"`
	CustomerID    int64             `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	SupplierID    int64             `json:"supplier_id"`
	SupplierName  string            `json:"supplier_name"`
	OrderDate     types.Date        `json:"order_date"`
	Status        enums.OrderStatus `json:"status"`
	StatusBadge   enums.Badge       `json:"status_badge"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	AmountPaid    decimal.Decimal   `json:"amount_paid"`
	TotalItems    int               `json:"total_items"`
	TotalQuantity int               `json:"total_quantity"`
}

// Item is one product line inside an order detail payload.
type Item struct {
	ID          int64           `json:"order_detail_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Detail is the full order payload.
type Detail struct {
	Summary
	Items         []Item              `json:"items"`
	DeliveryDays  *int                `json:"delivery_days"`
	DeliverySpeed enums.DeliverySpeed `json:"delivery_speed"`
	ShipmentID    *int64              `json:"shipment_id"`
}

// ItemInput is one requested product line.
type ItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CreateInput carries a new order request. OrderDate defaults to today.
type CreateInput struct {
	CustomerID int64       `json:"customer_id" validate:"required,gt=0"`
	SupplierID int64       `json:"supplier_id" validate:"required,gt=0"`
	OrderDate  *types.Date `json:"order_date"`
	Items      []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateInput mutates an order's date, supplier, and lines. The
// customer is fixed at creation.
type UpdateInput struct {
	OrderDate  *types.Date `json:"order_date"`
	SupplierID *int64      `json:"supplier_id" validate:"omitempty,gt=0"`
	Items      []ItemInput `json:"items" validate:"omitempty,min=1,dive"`
}
