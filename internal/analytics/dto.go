package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// SalesRow aggregates one day of order activity. PrevRevenue and
// GrowthRate compare against the previous trading day and stay nil on
// the first day of the series or when the previous revenue was zero.
type SalesRow struct {
	Date        types.Date       `json:"sale_date"`
	Orders      int              `json:"orders"`
	Customers   int              `json:"customers"`
	UnitsSold   int              `json:"units_sold"`
	Revenue     decimal.Decimal  `json:"revenue"`
	PrevRevenue *decimal.Decimal `json:"prev_revenue"`
	GrowthRate  *float64         `json:"growth_rate"`
}

// ProductRow tracks lifetime demand for one catalog item. Products that
// were never ordered still appear with zero aggregates.
type ProductRow struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	OrderCount      int             `json:"order_count"`
	TotalUnits      int             `json:"total_units"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AvgOrderSize    float64         `json:"avg_order_size"`
	CurrentStock    int             `json:"current_stock"`
	MonthlyVelocity float64         `json:"monthly_velocity"`
}

// CustomerRow summarizes one customer's lifetime purchase history.
type CustomerRow struct {
	CustomerID    int64           `json:"customer_id"`
	Name          string          `json:"name"`
	TotalOrders   int             `json:"total_orders"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	FirstOrder    types.Date      `json:"first_order"`
	LastOrder     types.Date      `json:"last_order"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	LifetimeDays  int             `json:"customer_lifetime_days"`
}

// SupplierRow grades one supplier across its full order history.
// AvgDeliveryDays is nil until at least one order has shipped.
type SupplierRow struct {
	SupplierID      int64                `json:"supplier_id"`
	Name            string               `json:"name"`
	TotalOrders     int                  `json:"total_orders"`
	TotalUnits      int                  `json:"total_units"`
	TotalValue      decimal.Decimal      `json:"total_value"`
	AvgDeliveryDays *float64             `json:"avg_delivery_days"`
	AvgOrderValue   decimal.Decimal      `json:"avg_order_value"`
	Rating          enums.SupplierRating `json:"performance_rating"`
}

// TrendRow aggregates one calendar month. PrevRevenue and RevenueGrowth
// compare against the previous active month.
type TrendRow struct {
	Month            string           `json:"month"`
	Orders           int              `json:"orders"`
	Customers        int              `json:"customers"`
	Units            int              `json:"units"`
	Revenue          decimal.Decimal  `json:"revenue"`
	UniqueProducts   int              `json:"unique_products"`
	PrevRevenue      *decimal.Decimal `json:"prev_revenue"`
	RevenueGrowth    *float64         `json:"revenue_growth"`
	AvgOrderValue    decimal.Decimal  `json:"avg_order_value"`
	AvgUnitsPerOrder float64          `json:"avg_units_per_order"`
}
