package suppliers

import "github.com/stocktrak/stocktrak-backend/pkg/enums"

// Summary is the wire shape for a supplier. TotalOrders and
// AvgDeliveryDays are aggregated from the supplier's orders;
// AvgDeliveryDays is nil until at least one order has shipped.
type Summary struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           *string  `json:"phone,omitempty"`
	Address         *string  `json:"address,omitempty"`
	TotalOrders     int      `json:"total_orders"`
	AvgDeliveryDays *float64 `json:"avg_delivery_days"`
}

// Performance grades a supplier by its delivery history. Suppliers with
// no shipped orders report zero shipments and an excellent grade.
type Performance struct {
	Summary
	TotalShipments int                  `json:"total_shipments"`
	Rating         enums.SupplierRating `json:"rating"`
	BelowAverage   bool                 `json:"below_average"`
}

// CreateInput carries a new supplier request.
type CreateInput struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// UpdateInput carries a partial supplier update.
type UpdateInput struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}
