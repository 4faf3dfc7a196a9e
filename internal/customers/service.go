package customers

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type service struct {
	repo Repository
}

// NewService builds a customers service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Detail, error) {
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking customer email")
	} else if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "a customer with this email already exists")
	}

	customer := &models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if _, err := s.repo.Create(ctx, customer); err != nil {
		// Precheck races with concurrent inserts on uq_customers_email.
		if db.IsUniqueViolation(err, "uq_customers_email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a customer with this email already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating customer")
	}

	detail := toDetail(*customer)
	return &detail, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Detail, error) {
	customer, err := s.repo.FindWithOrders(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading customer")
	}
	detail := toDetail(*customer)
	return &detail, nil
}

func (s *service) List(ctx context.Context, page pagination.Page, query string) (pagination.Result[Summary], error) {
	rows, total, err := s.repo.List(ctx, page, query)
	if err != nil {
		return pagination.Result[Summary]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing customers")
	}

	summaries := make([]Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toSummary(row))
	}
	return pagination.NewResult(summaries, total, page), nil
}

// ListVIPs returns every customer whose lifetime spend reaches the VIP
// threshold, highest spender first.
func (s *service) ListVIPs(ctx context.Context) ([]Detail, error) {
	rows, err := s.repo.ListWithOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing customers")
	}

	vips := []Detail{}
	for _, row := range rows {
		detail := toDetail(row)
		if detail.IsVIP {
			vips = append(vips, detail)
		}
	}
	sort.Slice(vips, func(i, j int) bool {
		return vips[i].TotalSpent.GreaterThan(vips[j].TotalSpent)
	})
	return vips, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Detail, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading customer")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		if existing, err := s.repo.FindByEmail(ctx, *input.Email); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking customer email")
		} else if existing != nil && existing.ID != id {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a customer with this email already exists")
		}
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, "uq_customers_email") {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "a customer with this email already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating customer")
		}
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading customer")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting customer")
	}
	return nil
}

func toSummary(customer models.Customer) Summary {
	return Summary{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Address: customer.Address,
	}
}

func toDetail(customer models.Customer) Detail {
	spent := decimal.Zero
	for _, order := range customer.Orders {
		spent = spent.Add(orders.Total(order))
	}
	return Detail{
		Summary:     toSummary(customer),
		TotalOrders: len(customer.Orders),
		TotalSpent:  spent,
		IsVIP:       classify.IsVIP(spent),
	}
}
