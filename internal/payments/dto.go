package payments

import (
	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Filters describe the inputs supported by the payments list.
type Filters struct {
	OrderID  *int64
	DateFrom *types.Date
	DateTo   *types.Date
}

// Row is the wire shape for a payment. OrderDate and CustomerName are
// derived from the paid order.
type Row struct {
	ID           int64               `json:"id"`
	OrderID      int64               `json:"order_id"`
	OrderDate    types.Date          `json:"order_date"`
	CustomerName string              `json:"customer_name"`
	Amount       decimal.Decimal     `json:"amount"`
	PaymentDate  types.Date          `json:"payment_date"`
	Status       enums.PaymentStatus `json:"status"`
	StatusBadge  enums.Badge         `json:"status_badge"`
	Method       *string             `json:"method,omitempty"`
}

// CreateInput records a payment against an order. PaymentDate defaults
// to today and Status to completed.
type CreateInput struct {
	OrderID     int64                `json:"order_id" validate:"required,gt=0"`
	Amount      decimal.Decimal      `json:"amount" validate:"required"`
	PaymentDate *types.Date          `json:"payment_date"`
	Status      *enums.PaymentStatus `json:"status"`
	Method      *string              `json:"method" validate:"omitempty,max=50"`
}
