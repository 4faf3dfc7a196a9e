package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type stubRepo struct {
	orders   map[int64]*models.Order
	nextID   int64
	replaced []models.OrderDetail
	deleted  []int64
	updates  map[string]any
}

func newStubRepo() *stubRepo {
	return &stubRepo{orders: map[int64]*models.Order{}, nextID: 1}
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = s.nextID
	s.nextID++
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (s *stubRepo) List(ctx context.Context, page pagination.Page, filters Filters) ([]models.Order, int, error) {
	all := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		all = append(all, *order)
	}
	return pagination.Slice(all, page), len(all), nil
}

func (s *stubRepo) ReplaceDetails(ctx context.Context, orderID int64, details []models.OrderDetail) error {
	s.replaced = details
	s.orders[orderID].Details = details
	return nil
}

func (s *stubRepo) Update(ctx context.Context, orderID int64, updates map[string]any) error {
	s.updates = updates
	if date, ok := updates["order_date"].(types.Date); ok {
		s.orders[orderID].OrderDate = date
	}
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, orderID int64) error {
	s.deleted = append(s.deleted, orderID)
	delete(s.orders, orderID)
	return nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

type stubCustomers struct {
	known map[int64]bool
}

func (s stubCustomers) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	if !s.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Customer{ID: id, Name: "Test Customer"}, nil
}

type stubSuppliers struct {
	known map[int64]bool
}

func (s stubSuppliers) FindByID(ctx context.Context, id int64) (*models.Supplier, error) {
	if !s.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Supplier{ID: id, Name: "Test Supplier"}, nil
}

type stubProducts struct {
	products map[int64]models.Product
}

func (s stubProducts) FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	found := map[int64]models.Product{}
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func date(value string) types.Date {
	d, err := types.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func testService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, stubTx{}, stubCustomers{known: map[int64]bool{3: true}}, stubSuppliers{known: map[int64]bool{5: true}}, stubProducts{
		products: map[int64]models.Product{
			10: {ID: 10, Name: "Widget", Price: price("50.00")},
			11: {ID: 11, Name: "Gadget", Price: price("20.00")},
		},
	})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestCreateMergesDuplicateLines(t *testing.T) {
	repo := newStubRepo()
	svc := testService(t, repo)

	detail, err := svc.Create(context.Background(), CreateInput{
		CustomerID: 3,
		SupplierID: 5,
		Items: []ItemInput{
			{ProductID: 10, Quantity: 1},
			{ProductID: 11, Quantity: 1},
			{ProductID: 10, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("expected 2 merged lines, got %d", len(detail.Items))
	}
	if detail.Items[0].ProductID != 10 || detail.Items[0].Quantity != 2 {
		t.Fatalf("expected merged widget line qty 2, got %+v", detail.Items[0])
	}
}

func TestCreateComputesTotalFromCurrentPrices(t *testing.T) {
	repo := newStubRepo()
	svc := testService(t, repo)

	// repo stores lines without Product preloads; simulate the reload
	detail, err := svc.Create(context.Background(), CreateInput{
		CustomerID: 3,
		SupplierID: 5,
		Items: []ItemInput{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// stub repo keeps the created model, so hydrate products the way a
	// preload would before re-reading
	order := repo.orders[detail.ID]
	widget := models.Product{ID: 10, Name: "Widget", Price: price("50.00")}
	gadget := models.Product{ID: 11, Name: "Gadget", Price: price("20.00")}
	order.Details[0].Product = &widget
	order.Details[1].Product = &gadget

	reloaded, err := svc.Get(context.Background(), detail.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reloaded.TotalAmount.Equal(price("120.00")) {
		t.Fatalf("expected total 120.00, got %s", reloaded.TotalAmount)
	}
}

func TestCreateRejectsUnknownCustomer(t *testing.T) {
	svc := testService(t, newStubRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		CustomerID: 99,
		SupplierID: 5,
		Items:      []ItemInput{{ProductID: 10, Quantity: 1}},
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRejectsUnknownProduct(t *testing.T) {
	svc := testService(t, newStubRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		CustomerID: 3,
		SupplierID: 5,
		Items:      []ItemInput{{ProductID: 404, Quantity: 1}},
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRejectsUnknownSupplier(t *testing.T) {
	svc := testService(t, newStubRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		CustomerID: 3,
		SupplierID: 77,
		Items:      []ItemInput{{ProductID: 10, Quantity: 1}},
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStatusDerivation(t *testing.T) {
	base := models.Order{ID: 1, OrderDate: date("2026-08-01")}

	if got := Status(base); got != enums.OrderStatusPending {
		t.Fatalf("expected pending, got %s", got)
	}

	paid := base
	paid.Payments = []models.Payment{{Amount: price("10.00"), Status: enums.PaymentStatusCompleted}}
	if got := Status(paid); got != enums.OrderStatusPaid {
		t.Fatalf("expected paid, got %s", got)
	}

	failedOnly := base
	failedOnly.Payments = []models.Payment{{Amount: price("10.00"), Status: enums.PaymentStatusFailed}}
	if got := Status(failedOnly); got != enums.OrderStatusPending {
		t.Fatalf("failed payments should not mark an order paid, got %s", got)
	}

	shipped := paid
	shipped.Shipment = &models.Shipment{ID: 5, ShipmentDate: date("2026-08-05")}
	if got := Status(shipped); got != enums.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", got)
	}

	if days := DeliveryDays(shipped); days == nil || *days != 4 {
		t.Fatalf("expected 4 delivery days, got %v", days)
	}
	if days := DeliveryDays(base); days != nil {
		t.Fatalf("expected nil delivery days before shipping, got %d", *days)
	}
}

func TestUpdateBlockedWhenShipped(t *testing.T) {
	repo := newStubRepo()
	svc := testService(t, repo)

	repo.orders[1] = &models.Order{
		ID:         1,
		CustomerID: 3,
		SupplierID: 5,
		OrderDate:  date("2026-08-01"),
		Shipment:   &models.Shipment{ID: 2, ShipmentDate: date("2026-08-03")},
	}
	repo.nextID = 2

	_, err := svc.Update(context.Background(), 1, UpdateInput{Items: []ItemInput{{ProductID: 10, Quantity: 1}}})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}

	if err := svc.Delete(context.Background(), 1); pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected delete state conflict, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("shipped order must not be deleted")
	}
}

func TestDeleteUnshippedOrder(t *testing.T) {
	repo := newStubRepo()
	svc := testService(t, repo)

	repo.orders[1] = &models.Order{ID: 1, CustomerID: 3, SupplierID: 5, OrderDate: types.Today()}
	repo.nextID = 2

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Fatalf("expected order 1 deleted, got %v", repo.deleted)
	}
}
