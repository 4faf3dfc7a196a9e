package products

import (
	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
)

// Filters describe the inputs supported by the products list.
type Filters struct {
	Query      string
	Category   string
	SupplierID *int64
}

// Row is the product shape served everywhere: catalog reads, order
// lines, and the low-stock report.
type Row struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Description  *string           `json:"description,omitempty"`
	Category     *string           `json:"category,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	SupplierID   *int64            `json:"supplier_id,omitempty"`
	SupplierName string            `json:"supplier_name,omitempty"`
	Quantity     int               `json:"quantity"`
	StockStatus  enums.StockStatus `json:"stock_status"`
}

// CreateInput carries a new product request.
type CreateInput struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Category    *string         `json:"category" validate:"omitempty,max=100"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	SupplierID  *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
}

// UpdateInput carries a partial product update.
type UpdateInput struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	SupplierID  *int64           `json:"supplier_id" validate:"omitempty,gt=0"`
}
