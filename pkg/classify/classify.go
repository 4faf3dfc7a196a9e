// Package classify holds the pure presentation rules shared by the API
// and the client: status badges, stock labels, delivery buckets, and
// customer/supplier grading.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
)

const (
	// LowStockThreshold is the quantity below which a product counts as low.
	LowStockThreshold = 10
	// FastDeliveryDays is the upper bound, in days, of a fast delivery.
	FastDeliveryDays = 3
	// NormalDeliveryDays is the upper bound, in days, of an on-time delivery.
	NormalDeliveryDays = 7
)

// VIPThreshold is the lifetime spend at which a customer becomes a VIP.
var VIPThreshold = decimal.NewFromInt(1000)

// OrderBadge maps a derived order status to its badge variant. Matching
// is case-insensitive so cached and live payloads agree.
func OrderBadge(status string) enums.Badge {
	switch strings.ToLower(status) {
	case enums.OrderStatusShipped.String():
		return enums.BadgeSuccess
	case enums.OrderStatusPaid.String():
		return enums.BadgeInfo
	case enums.OrderStatusPending.String():
		return enums.BadgeWarning
	default:
		return enums.BadgeUnknown
	}
}

// PaymentBadge maps a payment status to its badge variant.
func PaymentBadge(status string) enums.Badge {
	switch strings.ToLower(status) {
	case enums.PaymentStatusCompleted.String():
		return enums.BadgeSuccess
	case enums.PaymentStatusPending.String():
		return enums.BadgeWarning
	case enums.PaymentStatusFailed.String():
		return enums.BadgeDanger
	default:
		return enums.BadgeUnknown
	}
}

// StockStatus labels a product's remaining quantity.
func StockStatus(quantity int) enums.StockStatus {
	switch {
	case quantity <= 0:
		return enums.StockStatusOut
	case quantity < LowStockThreshold:
		return enums.StockStatusLow
	default:
		return enums.StockStatusIn
	}
}

// DeliverySpeed buckets an order's delivery time. A nil value means the
// order has not shipped yet.
func DeliverySpeed(days *int) enums.DeliverySpeed {
	switch {
	case days == nil:
		return enums.DeliverySpeedPending
	case *days <= FastDeliveryDays:
		return enums.DeliverySpeedFast
	case *days <= NormalDeliveryDays:
		return enums.DeliverySpeedNormal
	default:
		return enums.DeliverySpeedDelayed
	}
}

// IsLate reports whether an order counts as a late shipment: either it
// never shipped or delivery took longer than the normal window.
func IsLate(days *int) bool {
	return days == nil || *days > NormalDeliveryDays
}

// IsVIP reports whether a customer's lifetime spend has reached the
// VIP threshold.
func IsVIP(totalSpent decimal.Decimal) bool {
	return totalSpent.GreaterThanOrEqual(VIPThreshold)
}

// SupplierRating grades a supplier by its average delivery days.
func SupplierRating(avgDeliveryDays float64) enums.SupplierRating {
	switch {
	case avgDeliveryDays > 5:
		return enums.SupplierRatingPoor
	case avgDeliveryDays > 3:
		return enums.SupplierRatingAverage
	default:
		return enums.SupplierRatingExcellent
	}
}
