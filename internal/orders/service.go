package orders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo      Repository
	tx        txRunner
	customers CustomerFinder
	suppliers SupplierFinder
	products  ProductFinder
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, tx txRunner, customers CustomerFinder, suppliers SupplierFinder, products ProductFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer finder required")
	}
	if suppliers == nil {
		return nil, fmt.Errorf("supplier finder required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{repo: repo, tx: tx, customers: customers, suppliers: suppliers, products: products}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Detail, error) {
	items := mergeItems(input.Items)
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}

	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up customer")
	}

	if err := s.checkSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}
	if err := s.checkProducts(ctx, items); err != nil {
		return nil, err
	}

	orderDate := types.Today()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &models.Order{
		CustomerID: input.CustomerID,
		SupplierID: input.SupplierID,
		OrderDate:  orderDate,
	}
	for _, item := range items {
		order.Details = append(order.Details, models.OrderDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, createErr := s.repo.WithTx(tx).Create(ctx, order)
		return createErr
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}

	return s.Get(ctx, order.ID)
}

func (s *service) Get(ctx context.Context, id int64) (*Detail, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	detail := toDetail(*order)
	return &detail, nil
}

func (s *service) List(ctx context.Context, page pagination.Page, filters Filters) (pagination.Result[Summary], error) {
	orders, total, err := s.repo.List(ctx, page, filters)
	if err != nil {
		return pagination.Result[Summary]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	summaries := make([]Summary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, toSummary(order))
	}
	return pagination.NewResult(summaries, total, page), nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Detail, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	if order.Shipment != nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "shipped orders cannot be modified")
	}

	if input.SupplierID != nil {
		if err := s.checkSupplier(ctx, *input.SupplierID); err != nil {
			return nil, err
		}
	}

	var details []models.OrderDetail
	if input.Items != nil {
		items := mergeItems(input.Items)
		if len(items) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
		}
		if err := s.checkProducts(ctx, items); err != nil {
			return nil, err
		}
		for _, item := range items {
			details = append(details, models.OrderDetail{
				OrderID:   id,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
	}

	updates := map[string]any{}
	if input.OrderDate != nil {
		updates["order_date"] = *input.OrderDate
	}
	if input.SupplierID != nil {
		updates["supplier_id"] = *input.SupplierID
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if len(updates) > 0 {
			if updateErr := repo.Update(ctx, id, updates); updateErr != nil {
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
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order")
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	if order.Shipment != nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "shipped orders cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting order")
	}
	return nil
}

func (s *service) checkSupplier(ctx context.Context, id int64) error {
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up supplier")
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

func toSummary(order models.Order) Summary {
	status := Status(order)
	summary := Summary{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		SupplierID:  order.SupplierID,
		OrderDate:   order.OrderDate,
		Status:      status,
		StatusBadge: classify.OrderBadge(status.String()),
		TotalAmount: Total(order),
		AmountPaid:  AmountPaid(order),
		TotalItems:  len(order.Details),
	}
	if order.Customer != nil {
		summary.CustomerName = order.Customer.Name
	}
	if order.Supplier != nil {
		summary.SupplierName = order.Supplier.Name
	}
	for _, line := range order.Details {
		summary.TotalQuantity += line.Quantity
	}
	return summary
}

func toDetail(order models.Order) Detail {
	days := DeliveryDays(order)
	detail := Detail{
		Summary:       toSummary(order),
		Items:         make([]Item, 0, len(order.Details)),
		DeliveryDays:  days,
		DeliverySpeed: classify.DeliverySpeed(days),
	}
	if order.Shipment != nil {
		detail.ShipmentID = &order.Shipment.ID
	}
	for _, line := range order.Details {
		item := Item{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if line.Product != nil {
			item.ProductName = line.Product.Name
			item.UnitPrice = line.Product.Price
			item.TotalPrice = line.Product.Price.Mul(decimalFromInt(line.Quantity))
		}
		detail.Items = append(detail.Items, item)
	}
	return detail
}
