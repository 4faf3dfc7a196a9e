package customers

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type stubRepo struct {
	customers map[int64]*models.Customer
	nextID    int64
	deleted   []int64
	updates   map[string]any
}

func newStubRepo() *stubRepo {
	return &stubRepo{customers: map[int64]*models.Customer{}, nextID: 1}
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.ID = s.nextID
	s.nextID++
	s.customers[customer.ID] = customer
	return customer, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindWithOrders(ctx context.Context, id int64) (*models.Customer, error) {
	return s.FindByID(ctx, id)
}

func (s *stubRepo) List(ctx context.Context, page pagination.Page, query string) ([]models.Customer, int, error) {
	all := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			continue
		}
		all = append(all, *c)
	}
	return pagination.Slice(all, page), len(all), nil
}

func (s *stubRepo) ListWithOrders(ctx context.Context) ([]models.Customer, error) {
	all := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		all = append(all, *c)
	}
	return all, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	s.updates = updates
	if email, ok := updates["email"].(string); ok {
		s.customers[id].Email = email
	}
	if name, ok := updates["name"].(string); ok {
		s.customers[id].Name = name
	}
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	delete(s.customers, id)
	return nil
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func orderWorth(total string) models.Order {
	return models.Order{
		Details: []models.OrderDetail{{
			Quantity: 1,
			Product:  &models.Product{Price: money(total)},
		}},
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateInput{Name: "A", Email: "a@example.test"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{Name: "B", Email: "A@Example.Test"})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetComputesSpendAndVIP(t *testing.T) {
	repo := newStubRepo()
	svc, _ := NewService(repo)

	repo.customers[1] = &models.Customer{
		ID: 1, Name: "Big Spender", Email: "big@example.test",
		Orders: []models.Order{orderWorth("600.00"), orderWorth("400.00")},
	}
	repo.customers[2] = &models.Customer{
		ID: 2, Name: "Occasional", Email: "small@example.test",
		Orders: []models.Order{orderWorth("999.99")},
	}
	repo.nextID = 3

	big, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !big.TotalSpent.Equal(money("1000.00")) {
		t.Fatalf("expected spend 1000.00, got %s", big.TotalSpent)
	}
	if !big.IsVIP {
		t.Fatalf("spend at the threshold should be VIP")
	}

	small, err := svc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if small.IsVIP {
		t.Fatalf("spend below the threshold should not be VIP")
	}
}

func TestListVIPsSortsBySpend(t *testing.T) {
	repo := newStubRepo()
	svc, _ := NewService(repo)

	repo.customers[1] = &models.Customer{ID: 1, Name: "Mid", Email: "m@example.test", Orders: []models.Order{orderWorth("1500.00")}}
	repo.customers[2] = &models.Customer{ID: 2, Name: "Top", Email: "t@example.test", Orders: []models.Order{orderWorth("4000.00")}}
	repo.customers[3] = &models.Customer{ID: 3, Name: "None", Email: "n@example.test"}
	repo.nextID = 4

	vips, err := svc.ListVIPs(context.Background())
	if err != nil {
		t.Fatalf("list vips failed: %v", err)
	}
	if len(vips) != 2 {
		t.Fatalf("expected 2 vips, got %d", len(vips))
	}
	if vips[0].Name != "Top" || vips[1].Name != "Mid" {
		t.Fatalf("expected spend-descending order, got %s then %s", vips[0].Name, vips[1].Name)
	}
}

func TestUpdateRejectsEmailTakenByOther(t *testing.T) {
	repo := newStubRepo()
	svc, _ := NewService(repo)

	repo.customers[1] = &models.Customer{ID: 1, Name: "A", Email: "a@example.test"}
	repo.customers[2] = &models.Customer{ID: 2, Name: "B", Email: "b@example.test"}
	repo.nextID = 3

	taken := "b@example.test"
	_, err := svc.Update(context.Background(), 1, UpdateInput{Email: &taken})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	// re-submitting your own email is fine
	own := "a@example.test"
	if _, err := svc.Update(context.Background(), 1, UpdateInput{Email: &own}); err != nil {
		t.Fatalf("self-email update failed: %v", err)
	}
}

func TestDeleteMissingCustomer(t *testing.T) {
	svc, _ := NewService(newStubRepo())
	if err := svc.Delete(context.Background(), 42); pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
