package inventory

import "github.com/stocktrak/stocktrak-backend/pkg/enums"

// Row is the wire shape for one product's stock level.
type Row struct {
	ProductID   int64             `json:"product_id"`
	ProductName string            `json:"product_name"`
	Quantity    int               `json:"quantity"`
	StockStatus enums.StockStatus `json:"stock_status"`
}

// SetInput overwrites a product's on-hand quantity.
type SetInput struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}
