package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	pkgredis "github.com/stocktrak/stocktrak-backend/pkg/redis"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type stubRepo struct {
	orders    []models.Order
	customers int
	lowStock  int
	reads     int
}

func (s *stubRepo) OrdersSince(ctx context.Context, from types.Date) ([]models.Order, error) {
	s.reads++
	recent := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if order.OrderDate.Before(from.Time) {
			continue
		}
		recent = append(recent, order)
	}
	return recent, nil
}

func (s *stubRepo) CountCustomers(ctx context.Context) (int, error) { return s.customers, nil }

func (s *stubRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	return s.lowStock, nil
}

type stubCache struct {
	data map[string]string
}

func newStubCache() *stubCache { return &stubCache{data: map[string]string{}} }

func (c *stubCache) GetJSON(ctx context.Context, key string, dest any) error {
	raw, ok := c.data[key]
	if !ok {
		return pkgredis.ErrCacheMiss
	}
	return json.Unmarshal([]byte(raw), dest)
}

func (c *stubCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = string(payload)
	return nil
}

func (c *stubCache) CacheKey(parts ...string) string {
	key := "st:cache"
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func price(value string) decimal.Decimal { return decimal.RequireFromString(value) }

func date(value string) types.Date {
	d, err := types.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func fixedNow(value string) func() time.Time {
	return func() time.Time { return date(value).Time }
}

func order(id, customerID int64, orderDate string, lines ...models.OrderDetail) models.Order {
	return models.Order{
		ID:         id,
		CustomerID: customerID,
		Customer:   &models.Customer{ID: customerID, Name: "Customer"},
		OrderDate:  date(orderDate),
		Details:    lines,
	}
}

func line(productID int64, qty int, unitPrice string) models.OrderDetail {
	return models.OrderDetail{
		ProductID: productID,
		Quantity:  qty,
		Product:   &models.Product{ID: productID, Name: "Product", Price: price(unitPrice)},
	}
}

func testService(t *testing.T, repo *stubRepo, cache Cache) Service {
	t.Helper()
	svc, err := NewService(repo, cache, time.Minute, nil)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	svc.(*service).now = fixedNow("2026-09-01")
	return svc
}

func TestOverviewAggregates(t *testing.T) {
	repo := &stubRepo{customers: 12, lowStock: 3}
	repo.orders = []models.Order{
		// pending, never shipped, in window: counts late too
		order(1, 1, "2026-08-20", line(10, 2, "50.00")),
		// shipped quickly, paid in full
		func() models.Order {
			o := order(2, 2, "2026-08-15", line(11, 1, "20.00"))
			o.Shipment = &models.Shipment{ID: 1, ShipmentDate: date("2026-08-17")}
			o.Payments = []models.Payment{{Amount: price("20.00"), Status: enums.PaymentStatusCompleted}}
			return o
		}(),
		// outside the 30-day window
		order(3, 1, "2026-06-01", line(10, 5, "50.00")),
	}

	svc := testService(t, repo, nil)
	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if overview.TotalOrders != 2 {
		t.Fatalf("expected 2 orders in window, got %d", overview.TotalOrders)
	}
	if !overview.Revenue.Equal(price("120.00")) {
		t.Fatalf("expected revenue 120.00, got %s", overview.Revenue)
	}
	if overview.PendingOrders != 1 {
		t.Fatalf("expected 1 pending order, got %d", overview.PendingOrders)
	}
	if overview.LateShipments != 1 {
		t.Fatalf("expected 1 late order, got %d", overview.LateShipments)
	}
	if overview.LowStockCount != 3 || overview.TotalCustomers != 12 {
		t.Fatalf("unexpected counts %+v", overview)
	}
}

func TestOverviewReadsThroughCache(t *testing.T) {
	repo := &stubRepo{}
	svc := testService(t, repo, newStubCache())

	if _, err := svc.Overview(context.Background()); err != nil {
		t.Fatalf("first overview failed: %v", err)
	}
	if _, err := svc.Overview(context.Background()); err != nil {
		t.Fatalf("second overview failed: %v", err)
	}
	if repo.reads != 1 {
		t.Fatalf("expected one database read, got %d", repo.reads)
	}
}

func TestMonthlyFillsEmptyMonths(t *testing.T) {
	repo := &stubRepo{}
	repo.orders = []models.Order{
		order(1, 1, "2026-09-01", line(10, 1, "10.00")),
		order(2, 1, "2026-07-15", line(10, 2, "10.00")),
	}

	svc := testService(t, repo, nil)
	rows, err := svc.Monthly(context.Background())
	if err != nil {
		t.Fatalf("monthly failed: %v", err)
	}
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	if rows[0].Month != "2025-10" || rows[11].Month != "2026-09" {
		t.Fatalf("unexpected month range %s..%s", rows[0].Month, rows[11].Month)
	}
	if rows[11].Orders != 1 || !rows[11].Revenue.Equal(price("10.00")) {
		t.Fatalf("unexpected current month row %+v", rows[11])
	}
	if rows[9].Orders != 1 || !rows[9].Revenue.Equal(price("20.00")) {
		t.Fatalf("unexpected july row %+v", rows[9])
	}
	if rows[8].Orders != 0 {
		t.Fatalf("empty month should report zero orders, got %+v", rows[8])
	}
}

func TestTopProductsRanksByQuantity(t *testing.T) {
	repo := &stubRepo{}
	repo.orders = []models.Order{
		order(1, 1, "2026-08-20", line(10, 2, "50.00"), line(11, 9, "1.00")),
		order(2, 2, "2026-08-22", line(10, 3, "50.00")),
	}

	svc := testService(t, repo, nil)
	top, err := svc.TopProducts(context.Background())
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 products, got %d", len(top))
	}
	if top[0].ProductID != 11 || top[0].Quantity != 9 {
		t.Fatalf("expected product 11 first with qty 9, got %+v", top[0])
	}
	if top[1].ProductID != 10 || !top[1].Revenue.Equal(price("250.00")) {
		t.Fatalf("expected product 10 revenue 250.00, got %+v", top[1])
	}
}

func TestTopCustomersRanksBySpend(t *testing.T) {
	repo := &stubRepo{}
	repo.orders = []models.Order{
		order(1, 1, "2026-08-20", line(10, 1, "10.00")),
		order(2, 2, "2026-08-21", line(10, 1, "500.00")),
		order(3, 2, "2026-08-25", line(11, 1, "5.00")),
	}

	svc := testService(t, repo, nil)
	top, err := svc.TopCustomers(context.Background())
	if err != nil {
		t.Fatalf("top customers failed: %v", err)
	}
	if top[0].CustomerID != 2 || top[0].Orders != 2 || !top[0].Spent.Equal(price("505.00")) {
		t.Fatalf("unexpected leader %+v", top[0])
	}
	if top[1].CustomerID != 1 {
		t.Fatalf("expected customer 1 second, got %+v", top[1])
	}
}
