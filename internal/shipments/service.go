package shipments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo     Repository
	tx       txRunner
	orders   OrderFinder
	products ProductFinder
}

// NewService builds a shipments service with the required dependencies.
func NewService(repo Repository, tx txRunner, orderFinder OrderFinder, products ProductFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipments repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if orderFinder == nil {
		return nil, fmt.Errorf("order finder required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{repo: repo, tx: tx, orders: orderFinder, products: products}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Detail, error) {
	items := mergeItems(input.Items)
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment requires at least one item")
	}

	if _, err := s.orders.FindByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up order")
	}

	if _, err := s.repo.FindByOrder(ctx, input.OrderID); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order already has a shipment")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking existing shipment")
	}

	if err := s.checkProducts(ctx, items); err != nil {
		return nil, err
	}

	shipmentDate := types.Today()
	if input.ShipmentDate != nil {
		shipmentDate = *input.ShipmentDate
	}

	shipment := &models.Shipment{
		OrderID:      input.OrderID,
		ShipmentDate: shipmentDate,
	}
	for _, item := range items {
		shipment.Details = append(shipment.Details, models.ShipmentDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, createErr := s.repo.WithTx(tx).Create(ctx, shipment)
		return createErr
	})
	if err != nil {
		// Precheck races with concurrent creates on uq_shipments_order_id.
		if db.IsUniqueViolation(err, "uq_shipments_order_id") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "order already has a shipment")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating shipment")
	}

	return s.Get(ctx, shipment.ID)
}

func (s *service) Get(ctx context.Context, id int64) (*Detail, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading shipment")
	}
	detail := toDetail(*shipment)
	return &detail, nil
}

func (s *service) List(ctx context.Context, page pagination.Page) (pagination.Result[Summary], error) {
	shipments, total, err := s.repo.List(ctx, page)
	if err != nil {
		return pagination.Result[Summary]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing shipments")
	}
	summaries := make([]Summary, 0, len(shipments))
	for _, shipment := range shipments {
		summaries = append(summaries, toSummary(shipment))
	}
	return pagination.NewResult(summaries, total, page), nil
}

// Late projects the orders that have not shipped, or shipped too slowly,
// oldest order first.
func (s *service) Late(ctx context.Context) ([]LateRow, error) {
	rows, err := s.repo.ListOrdersWithShipments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	late := make([]LateRow, 0)
	for _, order := range rows {
		days := orders.DeliveryDays(order)
		if !classify.IsLate(days) {
			continue
		}
		row := LateRow{
			OrderID:       order.ID,
			OrderDate:     order.OrderDate,
			DeliveryDays:  days,
			DeliverySpeed: classify.DeliverySpeed(days),
		}
		if order.Customer != nil {
			row.CustomerName = order.Customer.Name
		}
		if order.Shipment != nil {
			row.ShipmentID = &order.Shipment.ID
			row.ShipmentDate = &order.Shipment.ShipmentDate
		}
		late = append(late, row)
	}
	return late, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Detail, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading shipment")
	}

	var details []models.ShipmentDetail
	if input.Items != nil {
		items := mergeItems(input.Items)
		if len(items) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment requires at least one item")
		}
		if err := s.checkProducts(ctx, items); err != nil {
			return nil, err
		}
		for _, item := range items {
			details = append(details, models.ShipmentDetail{
				ShipmentID: id,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
			})
		}
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if input.ShipmentDate != nil {
			if updateErr := repo.Update(ctx, id, map[string]any{"shipment_date": *input.ShipmentDate}); updateErr != nil {
				return updateErr
			}
		}
		if details != nil {
			if replaceErr := repo.ReplaceDetails(ctx, id, details); replaceErr != nil {
				return replaceErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating shipment")
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading shipment")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting shipment")
	}
	return nil
}

func (s *service) checkProducts(ctx context.Context, items []ItemInput) error {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up products")
	}
	for _, item := range items {
		if _, ok := found[item.ProductID]; !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
	}
	return nil
}

// mergeItems collapses duplicate product lines by summing quantities, in
// first-seen order. Lines with non-positive quantity are dropped.
func mergeItems(items []ItemInput) []ItemInput {
	merged := make([]ItemInput, 0, len(items))
	index := map[int64]int{}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if at, ok := index[item.ProductID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

func toSummary(shipment models.Shipment) Summary {
	summary := Summary{
		ID:           shipment.ID,
		OrderID:      shipment.OrderID,
		ShipmentDate: shipment.ShipmentDate,
	}
	if shipment.Order != nil {
		summary.OrderDate = shipment.Order.OrderDate
		summary.DeliveryDays = shipment.ShipmentDate.DaysSince(shipment.Order.OrderDate)
		if shipment.Order.Customer != nil {
			summary.CustomerName = shipment.Order.Customer.Name
		}
		if shipment.Order.Supplier != nil {
			summary.SupplierName = shipment.Order.Supplier.Name
		}
	}
	days := summary.DeliveryDays
	summary.DeliverySpeed = classify.DeliverySpeed(&days)
	return summary
}

func toDetail(shipment models.Shipment) Detail {
	detail := Detail{
		Summary: toSummary(shipment),
		Items:   make([]Item, 0, len(shipment.Details)),
	}
	for _, line := range shipment.Details {
		item := Item{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if line.Product != nil {
			item.ProductName = line.Product.Name
		}
		detail.Items = append(detail.Items, item)
	}
	return detail
}
