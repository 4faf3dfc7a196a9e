package client

import (
	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Customer is the customer payload served by the API, including the
// spend-derived fields.
type Customer struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       *string         `json:"phone,omitempty"`
	Address     *string         `json:"address,omitempty"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	IsVIP       bool            `json:"is_vip"`
}

// CustomerInput creates or updates a customer.
type CustomerInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Supplier is the supplier payload with order-derived aggregates.
type Supplier struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           *string  `json:"phone,omitempty"`
	Address         *string  `json:"address,omitempty"`
	TotalOrders     int      `json:"total_orders"`
	AvgDeliveryDays *float64 `json:"avg_delivery_days"`
}

// SupplierPerformance adds the fleet-relative rating fields.
type SupplierPerformance struct {
	Supplier
	TotalShipments int                  `json:"total_shipments"`
	Rating         enums.SupplierRating `json:"rating"`
	BelowAverage   bool                 `json:"below_average"`
}

// SupplierInput creates or updates a supplier.
type SupplierInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Product is the catalog payload, including the live stock level.
type Product struct {
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

// ProductInput creates or updates a product.
type ProductInput struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  *int64          `json:"supplier_id,omitempty"`
	Quantity    int             `json:"quantity"`
}

// InventoryRow is one product's stock level.
type InventoryRow struct {
	ProductID   int64             `json:"product_id"`
	ProductName string            `json:"product_name"`
	Quantity    int               `json:"quantity"`
	StockStatus enums.StockStatus `json:"stock_status"`
}

// OrderItem is one product line inside an order.
type OrderItem struct {
	ID          int64           `json:"order_detail_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Order is the full order payload with derived status and totals.
type Order struct {
	ID            int64               `json:"id"`
	CustomerID    int64               `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	SupplierID    int64               `json:"supplier_id"`
	SupplierName  string              `json:"supplier_name"`
	OrderDate     types.Date          `json:"order_date"`
	Status        enums.OrderStatus   `json:"status"`
	StatusBadge   enums.Badge         `json:"status_badge"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	AmountPaid    decimal.Decimal     `json:"amount_paid"`
	TotalItems    int                 `json:"total_items"`
	TotalQuantity int                 `json:"total_quantity"`
	Items         []OrderItem         `json:"items,omitempty"`
	DeliveryDays  *int                `json:"delivery_days,omitempty"`
	DeliverySpeed enums.DeliverySpeed `json:"delivery_speed,omitempty"`
	ShipmentID    *int64              `json:"shipment_id,omitempty"`
}

// OrderItemInput is one requested product line.
type OrderItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderInput creates an order.
type OrderInput struct {
	CustomerID int64            `json:"customer_id"`
	SupplierID int64            `json:"supplier_id"`
	OrderDate  *types.Date      `json:"order_date,omitempty"`
	Items      []OrderItemInput `json:"items"`
}

// OrderUpdateInput mutates an order's date, supplier, and lines.
type OrderUpdateInput struct {
	OrderDate  *types.Date      `json:"order_date,omitempty"`
	SupplierID *int64           `json:"supplier_id,omitempty"`
	Items      []OrderItemInput `json:"items,omitempty"`
}

// ShipmentItem is one product line inside a shipment.
type ShipmentItem struct {
	ID          int64  `json:"shipment_detail_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Shipment is the full shipment payload with delivery classification.
type Shipment struct {
	ID            int64               `json:"id"`
	OrderID       int64               `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	SupplierName  string              `json:"supplier_name"`
	OrderDate     types.Date          `json:"order_date"`
	ShipmentDate  types.Date          `json:"shipment_date"`
	DeliveryDays  int                 `json:"delivery_days"`
	DeliverySpeed enums.DeliverySpeed `json:"delivery_speed"`
	Items         []ShipmentItem      `json:"items,omitempty"`
}

// LateShipment is one row of the late report. Unshipped orders carry
// nil shipment fields.
type LateShipment struct {
	OrderID       int64               `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	OrderDate     types.Date          `json:"order_date"`
	ShipmentID    *int64              `json:"shipment_id"`
	ShipmentDate  *types.Date         `json:"shipment_date"`
	DeliveryDays  *int                `json:"delivery_days"`
	DeliverySpeed enums.DeliverySpeed `json:"delivery_speed"`
}

// ShipmentItemInput is one requested shipment line.
type ShipmentItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// ShipmentInput creates a shipment for an order.
type ShipmentInput struct {
	OrderID      int64               `json:"order_id"`
	ShipmentDate *types.Date         `json:"shipment_date,omitempty"`
	Items        []ShipmentItemInput `json:"items"`
}

// ShipmentUpdateInput mutates a shipment's date and lines.
type ShipmentUpdateInput struct {
	ShipmentDate *types.Date         `json:"shipment_date,omitempty"`
	Items        []ShipmentItemInput `json:"items,omitempty"`
}

// Payment is the payment payload with order-derived fields.
type Payment struct {
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

// PaymentInput records a payment against an order.
type PaymentInput struct {
	OrderID     int64                `json:"order_id"`
	Amount      decimal.Decimal      `json:"amount"`
	PaymentDate *types.Date          `json:"payment_date,omitempty"`
	Status      *enums.PaymentStatus `json:"status,omitempty"`
	Method      *string              `json:"method,omitempty"`
}

// DashboardOverview is the at-a-glance metrics payload.
type DashboardOverview struct {
	TotalOrders    int             `json:"total_orders"`
	Revenue        decimal.Decimal `json:"revenue"`
	PendingOrders  int             `json:"pending_orders"`
	LateShipments  int             `json:"late_shipments"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalCustomers int             `json:"total_customers"`
}

// MonthlyRow is one month of order volume and revenue.
type MonthlyRow struct {
	Month   string          `json:"month"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopCustomer is one row of the highest-spend ranking.
type TopCustomer struct {
	CustomerID int64           `json:"customer_id"`
	Name       string          `json:"name"`
	Orders     int             `json:"orders"`
	Spent      decimal.Decimal `json:"spent"`
}

// SalesAnalytics is one day of order activity with a day-over-day
// revenue comparison.
type SalesAnalytics struct {
	Date        types.Date       `json:"sale_date"`
	Orders      int              `json:"orders"`
	Customers   int              `json:"customers"`
	UnitsSold   int              `json:"units_sold"`
	Revenue     decimal.Decimal  `json:"revenue"`
	PrevRevenue *decimal.Decimal `json:"prev_revenue"`
	GrowthRate  *float64         `json:"growth_rate"`
}

// ProductAnalytics is the lifetime demand profile of one catalog item.
type ProductAnalytics struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	OrderCount      int             `json:"order_count"`
	TotalUnits      int             `json:"total_units"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AvgOrderSize    float64         `json:"avg_order_size"`
	CurrentStock    int             `json:"current_stock"`
	MonthlyVelocity float64         `json:"monthly_velocity"`
}

// CustomerAnalytics is one customer's lifetime purchase summary.
type CustomerAnalytics struct {
	CustomerID    int64           `json:"customer_id"`
	Name          string          `json:"name"`
	TotalOrders   int             `json:"total_orders"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	FirstOrder    types.Date      `json:"first_order"`
	LastOrder     types.Date      `json:"last_order"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	LifetimeDays  int             `json:"customer_lifetime_days"`
}

// SupplierAnalytics grades one supplier across its full order history.
type SupplierAnalytics struct {
	SupplierID      int64                `json:"supplier_id"`
	Name            string               `json:"name"`
	TotalOrders     int                  `json:"total_orders"`
	TotalUnits      int                  `json:"total_units"`
	TotalValue      decimal.Decimal      `json:"total_value"`
	AvgDeliveryDays *float64             `json:"avg_delivery_days"`
	AvgOrderValue   decimal.Decimal      `json:"avg_order_value"`
	Rating          enums.SupplierRating `json:"performance_rating"`
}

// TrendAnalytics is one calendar month of activity with a
// month-over-month revenue comparison.
type TrendAnalytics struct {
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

// CanRecordPayment reports whether another payment may be recorded
// against the order. It flips false once the order is fully paid.
func CanRecordPayment(order Order) bool {
	return order.AmountPaid.LessThan(order.TotalAmount)
}
