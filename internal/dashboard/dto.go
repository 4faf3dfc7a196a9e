package dashboard

import "github.com/shopspring/decimal"

// Overview is the 30-day activity snapshot on the landing page.
type Overview struct {
	TotalOrders    int             `json:"total_orders"`
	Revenue        decimal.Decimal `json:"revenue"`
	PendingOrders  int             `json:"pending_orders"`
	LateShipments  int             `json:"late_shipments"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalCustomers int             `json:"total_customers"`
}

// MonthlyRow aggregates orders and revenue for one calendar month.
type MonthlyRow struct {
	Month   string          `json:"month"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProduct ranks a product by quantity ordered in the window.
type TopProduct struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopCustomer ranks a customer by spend in the window.
type TopCustomer struct {
	CustomerID int64           `json:"customer_id"`
	Name       string          `json:"name"`
	Orders     int             `json:"orders"`
	Spent      decimal.Decimal `json:"spent"`
}
