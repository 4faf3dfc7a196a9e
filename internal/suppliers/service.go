package suppliers

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type service struct {
	repo Repository
}

// NewService builds a suppliers service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("suppliers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Summary, error) {
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking supplier email")
	} else if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "a supplier with this email already exists")
	}

	supplier := &models.Supplier{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if _, err := s.repo.Create(ctx, supplier); err != nil {
		// Precheck races with concurrent inserts on uq_suppliers_email.
		if db.IsUniqueViolation(err, "uq_suppliers_email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a supplier with this email already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating supplier")
	}
	summary := toSummary(*supplier)
	return &summary, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Summary, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading supplier")
	}
	summary := toSummary(*supplier)
	return &summary, nil
}

func (s *service) List(ctx context.Context, page pagination.Page, query string) (pagination.Result[Summary], error) {
	rows, total, err := s.repo.List(ctx, page, query)
	if err != nil {
		return pagination.Result[Summary]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing suppliers")
	}
	summaries := make([]Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toSummary(row))
	}
	return pagination.NewResult(summaries, total, page), nil
}

// Performance grades each supplier by average delivery days across its
// shipped orders and flags the ones beating the fleet-wide average.
func (s *service) Performance(ctx context.Context) ([]Performance, error) {
	rows, err := s.repo.ListWithOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing suppliers")
	}

	perfs := make([]Performance, 0, len(rows))
	var fleetDays, fleetShipments int
	for _, row := range rows {
		perf := Performance{Summary: toSummary(row)}
		for _, order := range row.Orders {
			if order.Shipment == nil {
				continue
			}
			days := order.Shipment.ShipmentDate.DaysSince(order.OrderDate)
			perf.TotalShipments++
			fleetDays += days
			fleetShipments++
		}
		var avg float64
		if perf.AvgDeliveryDays != nil {
			avg = *perf.AvgDeliveryDays
		}
		perf.Rating = classify.SupplierRating(avg)
		perfs = append(perfs, perf)
	}

	if fleetShipments > 0 {
		fleetAvg := float64(fleetDays) / float64(fleetShipments)
		for i := range perfs {
			perfs[i].BelowAverage = perfs[i].AvgDeliveryDays != nil && *perfs[i].AvgDeliveryDays < fleetAvg
		}
	}

	sort.Slice(perfs, func(i, j int) bool {
		left, right := perfs[i].AvgDeliveryDays, perfs[j].AvgDeliveryDays
		if left == nil || right == nil {
			return left != nil
		}
		return *left < *right
	})
	return perfs, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Summary, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading supplier")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		if existing, err := s.repo.FindByEmail(ctx, *input.Email); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking supplier email")
		} else if existing != nil && existing.ID != id {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a supplier with this email already exists")
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
			if db.IsUniqueViolation(err, "uq_suppliers_email") {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "a supplier with this email already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating supplier")
		}
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading supplier")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting supplier")
	}
	return nil
}

func toSummary(supplier models.Supplier) Summary {
	summary := Summary{
		ID:          supplier.ID,
		Name:        supplier.Name,
		Email:       supplier.Email,
		Phone:       supplier.Phone,
		Address:     supplier.Address,
		TotalOrders: len(supplier.Orders),
	}
	var days, shipped int
	for _, order := range supplier.Orders {
		if order.Shipment == nil {
			continue
		}
		days += order.Shipment.ShipmentDate.DaysSince(order.OrderDate)
		shipped++
	}
	if shipped > 0 {
		avg := float64(days) / float64(shipped)
		summary.AvgDeliveryDays = &avg
	}
	return summary
}
