package suppliers

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type stubRepo struct {
	suppliers map[int64]*models.Supplier
	nextID    int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{suppliers: map[int64]*models.Supplier{}, nextID: 1}
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	supplier.ID = s.nextID
	s.nextID++
	s.suppliers[supplier.ID] = supplier
	return supplier, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.Supplier, error) {
	if row, ok := s.suppliers[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*models.Supplier, error) {
	for _, row := range s.suppliers {
		if strings.EqualFold(row.Email, email) {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(ctx context.Context, page pagination.Page, query string) ([]models.Supplier, int, error) {
	all := make([]models.Supplier, 0, len(s.suppliers))
	for _, row := range s.suppliers {
		all = append(all, *row)
	}
	return pagination.Slice(all, page), len(all), nil
}

func (s *stubRepo) ListWithOrders(ctx context.Context) ([]models.Supplier, error) {
	all := make([]models.Supplier, 0, len(s.suppliers))
	for _, row := range s.suppliers {
		all = append(all, *row)
	}
	return all, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	if email, ok := updates["email"].(string); ok {
		s.suppliers[id].Email = email
	}
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	delete(s.suppliers, id)
	return nil
}

func date(value string) types.Date {
	d, err := types.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func shippedOrder(orderDate, shipDate string) models.Order {
	return models.Order{
		OrderDate: date(orderDate),
		Shipment:  &models.Shipment{ShipmentDate: date(shipDate)},
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, err := NewService(newStubRepo())
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateInput{Name: "Acme", Email: "ops@acme.test"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err = svc.Create(context.Background(), CreateInput{Name: "Other", Email: "OPS@acme.test"})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPerformanceGradesAndFlags(t *testing.T) {
	repo := newStubRepo()
	svc, _ := NewService(repo)

	repo.suppliers[1] = &models.Supplier{
		ID: 1, Name: "Fast Freight", Email: "fast@example.test",
		Orders: []models.Order{
			shippedOrder("2026-08-01", "2026-08-03"),
			shippedOrder("2026-08-10", "2026-08-12"),
		},
	}
	repo.suppliers[2] = &models.Supplier{
		ID: 2, Name: "Slow Cargo", Email: "slow@example.test",
		Orders: []models.Order{
			shippedOrder("2026-08-01", "2026-08-09"),
		},
	}
	repo.suppliers[3] = &models.Supplier{ID: 3, Name: "Idle", Email: "idle@example.test"}
	repo.nextID = 4

	perfs, err := svc.Performance(context.Background())
	if err != nil {
		t.Fatalf("performance failed: %v", err)
	}
	if len(perfs) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(perfs))
	}

	// fastest first
	if perfs[0].Name != "Fast Freight" {
		t.Fatalf("expected Fast Freight first, got %s", perfs[0].Name)
	}
	if perfs[0].AvgDeliveryDays == nil || *perfs[0].AvgDeliveryDays != 2 {
		t.Fatalf("expected avg 2 days, got %v", perfs[0].AvgDeliveryDays)
	}
	if perfs[0].TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", perfs[0].TotalOrders)
	}
	if perfs[0].Rating != enums.SupplierRatingExcellent {
		t.Fatalf("expected excellent, got %s", perfs[0].Rating)
	}
	if !perfs[0].BelowAverage {
		t.Fatalf("fleet average is 4 days; 2 days should be below average")
	}

	var slow Performance
	for _, p := range perfs {
		if p.Name == "Slow Cargo" {
			slow = p
		}
	}
	if slow.Rating != enums.SupplierRatingPoor {
		t.Fatalf("8-day average should grade poor, got %s", slow.Rating)
	}
	if slow.BelowAverage {
		t.Fatalf("8-day average should not beat the fleet average")
	}

	var idle Performance
	for _, p := range perfs {
		if p.Name == "Idle" {
			idle = p
		}
	}
	if idle.TotalShipments != 0 || idle.BelowAverage {
		t.Fatalf("supplier without shipments should not be flagged: %+v", idle)
	}
}

func TestGetMissingSupplier(t *testing.T) {
	svc, _ := NewService(newStubRepo())
	if _, err := svc.Get(context.Background(), 9); pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
