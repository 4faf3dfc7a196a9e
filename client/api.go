package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// ListParams selects a page of a list endpoint.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// Customers

func (c *Client) Customers(ctx context.Context, params ListParams) (pagination.Result[Customer], error) {
	var result pagination.Result[Customer]
	err := c.get(ctx, "/api/v1/customers", params.query(), &result)
	return result, err
}

func (c *Client) VIPCustomers(ctx context.Context) ([]Customer, error) {
	var result []Customer
	err := c.get(ctx, "/api/v1/customers/vip", nil, &result)
	return result, err
}

func (c *Client) Customer(ctx context.Context, id int64) (*Customer, error) {
	var result Customer
	if err := c.get(ctx, fmt.Sprintf("/api/v1/customers/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CustomerOrders(ctx context.Context, id int64, params ListParams) (pagination.Result[Order], error) {
	var result pagination.Result[Order]
	err := c.get(ctx, fmt.Sprintf("/api/v1/customers/%d/orders", id), params.query(), &result)
	return result, err
}

func (c *Client) CreateCustomer(ctx context.Context, input CustomerInput) (*Customer, error) {
	var result Customer
	if err := c.post(ctx, "/api/v1/customers", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (*Customer, error) {
	var result Customer
	if err := c.put(ctx, fmt.Sprintf("/api/v1/customers/%d", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/customers/%d", id))
}

// Suppliers

func (c *Client) Suppliers(ctx context.Context, params ListParams) (pagination.Result[Supplier], error) {
	var result pagination.Result[Supplier]
	err := c.get(ctx, "/api/v1/suppliers", params.query(), &result)
	return result, err
}

func (c *Client) SupplierPerformance(ctx context.Context) ([]SupplierPerformance, error) {
	var result []SupplierPerformance
	err := c.get(ctx, "/api/v1/suppliers/performance", nil, &result)
	return result, err
}

func (c *Client) Supplier(ctx context.Context, id int64) (*Supplier, error) {
	var result Supplier
	if err := c.get(ctx, fmt.Sprintf("/api/v1/suppliers/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateSupplier(ctx context.Context, input SupplierInput) (*Supplier, error) {
	var result Supplier
	if err := c.post(ctx, "/api/v1/suppliers", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int64, input SupplierInput) (*Supplier, error) {
	var result Supplier
	if err := c.put(ctx, fmt.Sprintf("/api/v1/suppliers/%d", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/suppliers/%d", id))
}

// Products

// ProductParams adds the catalog filters to the paging controls.
type ProductParams struct {
	ListParams
	Category   string
	SupplierID *int64
}

func (p ProductParams) query() url.Values {
	q := p.ListParams.query()
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.SupplierID != nil {
		q.Set("supplier_id", strconv.FormatInt(*p.SupplierID, 10))
	}
	return q
}

func (c *Client) Products(ctx context.Context, params ProductParams) (pagination.Result[Product], error) {
	var result pagination.Result[Product]
	err := c.get(ctx, "/api/v1/products", params.query(), &result)
	return result, err
}

func (c *Client) Product(ctx context.Context, id int64) (*Product, error) {
	var result Product
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var result Product
	if err := c.post(ctx, "/api/v1/products", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	var result Product
	if err := c.put(ctx, fmt.Sprintf("/api/v1/products/%d", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/products/%d", id))
}

// Inventory

func (c *Client) Inventory(ctx context.Context, params ListParams, lowStockOnly bool) (pagination.Result[InventoryRow], error) {
	q := params.query()
	if lowStockOnly {
		q.Set("low_stock", "true")
	}
	var result pagination.Result[InventoryRow]
	err := c.get(ctx, "/api/v1/inventory", q, &result)
	return result, err
}

func (c *Client) InventoryAlerts(ctx context.Context) ([]InventoryRow, error) {
	var result []InventoryRow
	err := c.get(ctx, "/api/v1/inventory/alerts", nil, &result)
	return result, err
}

func (c *Client) ProductStock(ctx context.Context, productID int64) (*InventoryRow, error) {
	var result InventoryRow
	if err := c.get(ctx, fmt.Sprintf("/api/v1/inventory/%d", productID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SetProductStock(ctx context.Context, productID int64, quantity int) (*InventoryRow, error) {
	var result InventoryRow
	body := map[string]int{"quantity": quantity}
	if err := c.put(ctx, fmt.Sprintf("/api/v1/inventory/%d", productID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Orders

// OrderParams adds the order filters to the paging controls.
type OrderParams struct {
	ListParams
	Status     *enums.OrderStatus
	CustomerID *int64
	SupplierID *int64
	StartDate  *types.Date
	EndDate    *types.Date
}

func (p OrderParams) query() url.Values {
	q := p.ListParams.query()
	if p.Status != nil {
		q.Set("status", p.Status.String())
	}
	if p.CustomerID != nil {
		q.Set("customer_id", strconv.FormatInt(*p.CustomerID, 10))
	}
	if p.SupplierID != nil {
		q.Set("supplier_id", strconv.FormatInt(*p.SupplierID, 10))
	}
	if p.StartDate != nil {
		q.Set("start_date", p.StartDate.String())
	}
	if p.EndDate != nil {
		q.Set("end_date", p.EndDate.String())
	}
	return q
}

func (c *Client) Orders(ctx context.Context, params OrderParams) (pagination.Result[Order], error) {
	var result pagination.Result[Order]
	err := c.get(ctx, "/api/v1/orders", params.query(), &result)
	return result, err
}

func (c *Client) Order(ctx context.Context, id int64) (*Order, error) {
	var result Order
	if err := c.get(ctx, fmt.Sprintf("/api/v1/orders/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) OrderItems(ctx context.Context, id int64) ([]OrderItem, error) {
	var result []OrderItem
	err := c.get(ctx, fmt.Sprintf("/api/v1/orders/%d/details", id), nil, &result)
	return result, err
}

func (c *Client) CreateOrder(ctx context.Context, input OrderInput) (*Order, error) {
	var result Order
	if err := c.post(ctx, "/api/v1/orders", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, input OrderUpdateInput) (*Order, error) {
	var result Order
	if err := c.put(ctx, fmt.Sprintf("/api/v1/orders/%d", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/orders/%d", id))
}

// Shipments

func (c *Client) Shipments(ctx context.Context, params ListParams) (pagination.Result[Shipment], error) {
	var result pagination.Result[Shipment]
	err := c.get(ctx, "/api/v1/shipments", params.query(), &result)
	return result, err
}

func (c *Client) LateShipments(ctx context.Context) ([]LateShipment, error) {
	var result []LateShipment
	err := c.get(ctx, "/api/v1/shipments/late", nil, &result)
	return result, err
}

func (c *Client) Shipment(ctx context.Context, id int64) (*Shipment, error) {
	var result Shipment
	if err := c.get(ctx, fmt.Sprintf("/api/v1/shipments/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateShipment(ctx context.Context, input ShipmentInput) (*Shipment, error) {
	var result Shipment
	if err := c.post(ctx, "/api/v1/shipments", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateShipment(ctx context.Context, id int64, input ShipmentUpdateInput) (*Shipment, error) {
	var result Shipment
	if err := c.put(ctx, fmt.Sprintf("/api/v1/shipments/%d", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteShipment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/shipments/%d", id))
}

// Payments

// PaymentParams adds the payment filters to the paging controls.
type PaymentParams struct {
	ListParams
	OrderID   *int64
	StartDate *types.Date
	EndDate   *types.Date
}

func (p PaymentParams) query() url.Values {
	q := p.ListParams.query()
	if p.OrderID != nil {
		q.Set("order_id", strconv.FormatInt(*p.OrderID, 10))
	}
	if p.StartDate != nil {
		q.Set("start_date", p.StartDate.String())
	}
	if p.EndDate != nil {
		q.Set("end_date", p.EndDate.String())
	}
	return q
}

func (c *Client) Payments(ctx context.Context, params PaymentParams) (pagination.Result[Payment], error) {
	var result pagination.Result[Payment]
	err := c.get(ctx, "/api/v1/payments", params.query(), &result)
	return result, err
}

func (c *Client) Payment(ctx context.Context, id int64) (*Payment, error) {
	var result Payment
	if err := c.get(ctx, fmt.Sprintf("/api/v1/payments/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreatePayment(ctx context.Context, input PaymentInput) (*Payment, error) {
	var result Payment
	if err := c.post(ctx, "/api/v1/payments", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/payments/%d", id))
}

// Dashboard

func (c *Client) DashboardOverview(ctx context.Context) (*DashboardOverview, error) {
	var result DashboardOverview
	if err := c.get(ctx, "/api/v1/dashboard/overview", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DashboardMonthly(ctx context.Context) ([]MonthlyRow, error) {
	var result []MonthlyRow
	err := c.get(ctx, "/api/v1/dashboard/monthly", nil, &result)
	return result, err
}

func (c *Client) TopProducts(ctx context.Context) ([]TopProduct, error) {
	var result []TopProduct
	err := c.get(ctx, "/api/v1/dashboard/top-products", nil, &result)
	return result, err
}

func (c *Client) TopCustomers(ctx context.Context) ([]TopCustomer, error) {
	var result []TopCustomer
	err := c.get(ctx, "/api/v1/dashboard/top-customers", nil, &result)
	return result, err
}

// Analytics

// SalesParams narrows the sales analytics to a date range.
type SalesParams struct {
	StartDate *types.Date
	EndDate   *types.Date
}

func (p SalesParams) query() url.Values {
	q := url.Values{}
	if p.StartDate != nil {
		q.Set("start_date", p.StartDate.String())
	}
	if p.EndDate != nil {
		q.Set("end_date", p.EndDate.String())
	}
	return q
}

func (c *Client) SalesAnalytics(ctx context.Context, params SalesParams) ([]SalesAnalytics, error) {
	var result []SalesAnalytics
	err := c.get(ctx, "/api/v1/analytics/sales", params.query(), &result)
	return result, err
}

func (c *Client) ProductAnalytics(ctx context.Context) ([]ProductAnalytics, error) {
	var result []ProductAnalytics
	err := c.get(ctx, "/api/v1/analytics/products", nil, &result)
	return result, err
}

func (c *Client) CustomerAnalytics(ctx context.Context) ([]CustomerAnalytics, error) {
	var result []CustomerAnalytics
	err := c.get(ctx, "/api/v1/analytics/customers", nil, &result)
	return result, err
}

func (c *Client) SupplierAnalytics(ctx context.Context) ([]SupplierAnalytics, error) {
	var result []SupplierAnalytics
	err := c.get(ctx, "/api/v1/analytics/suppliers", nil, &result)
	return result, err
}

func (c *Client) TrendAnalytics(ctx context.Context) ([]TrendAnalytics, error) {
	var result []TrendAnalytics
	err := c.get(ctx, "/api/v1/analytics/trends", nil, &result)
	return result, err
}
