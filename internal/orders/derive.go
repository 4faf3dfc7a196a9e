package orders

import (
	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
)

// Total values the order's lines against the current product prices.
// Lines whose product no longer resolves contribute nothing.
func Total(o models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Details {
		if line.Product == nil {
			continue
		}
		total = total.Add(line.Product.Price.Mul(decimalFromInt(line.Quantity)))
	}
	return total
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// AmountPaid sums the order's payments, ignoring failed ones.
func AmountPaid(o models.Order) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range o.Payments {
		if p.Status == enums.PaymentStatusFailed {
			continue
		}
		paid = paid.Add(p.Amount)
	}
	return paid
}

// Status derives the order lifecycle state: shipped wins over paid,
// paid wins over pending.
func Status(o models.Order) enums.OrderStatus {
	if o.Shipment != nil {
		return enums.OrderStatusShipped
	}
	if AmountPaid(o).GreaterThan(decimal.Zero) {
		return enums.OrderStatusPaid
	}
	return enums.OrderStatusPending
}

// DeliveryDays returns whole days between order and shipment date, or
// nil when the order has not shipped.
func DeliveryDays(o models.Order) *int {
	if o.Shipment == nil {
		return nil
	}
	days := o.Shipment.ShipmentDate.DaysSince(o.OrderDate)
	return &days
}
