package enums

import "fmt"

// SupplierRating grades a supplier by its average delivery time.
type SupplierRating string

const (
	SupplierRatingExcellent SupplierRating = "excellent"
	SupplierRatingAverage   SupplierRating = "average"
	SupplierRatingPoor      SupplierRating = "poor"
)

var validSupplierRatings = []SupplierRating{
	SupplierRatingExcellent,
	SupplierRatingAverage,
	SupplierRatingPoor,
}

// String implements fmt.Stringer.
func (s SupplierRating) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SupplierRating.
func (s SupplierRating) IsValid() bool {
	for _, candidate := range validSupplierRatings {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSupplierRating converts raw input into a SupplierRating.
func ParseSupplierRating(value string) (SupplierRating, error) {
	for _, candidate := range validSupplierRatings {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid supplier rating %q", value)
}
