package enums

import "fmt"

// StockStatus labels how much of a product remains on hand. The values
// are the display strings shown next to each product.
type StockStatus string

const (
	StockStatusOut StockStatus = "Out of Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusIn  StockStatus = "In Stock"
)

var validStockStatuses = []StockStatus{
	StockStatusOut,
	StockStatusLow,
	StockStatusIn,
}

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockStatus.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts raw input into a StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
