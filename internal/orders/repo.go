package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Supplier").
		Preload("Details.Product").
		Preload("Shipment").
		Preload("Payments").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) List(ctx context.Context, page pagination.Page, filters Filters) ([]models.Order, int, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})
	query = applyFilters(query, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	lo, _ := page.Bounds(int(total))
	var orders []models.Order
	err := query.
		Preload("Customer").
		Preload("Supplier").
		Preload("Details.Product").
		Preload("Shipment").
		Preload("Payments").
		Order("order_date DESC, id DESC").
		Offset(lo).
		Limit(page.Size).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, int(total), nil
}

// applyFilters narrows the order query. The status filter is expressed
// through shipment/payment existence since status is never stored.
func applyFilters(query *gorm.DB, filters Filters) *gorm.DB {
	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filters.SupplierID)
	}
	if filters.DateFrom != nil {
		query = query.Where("order_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("order_date <= ?", *filters.DateTo)
	}
	if filters.Status != nil {
		shipped := "EXISTS (SELECT 1 FROM shipments s WHERE s.order_id = orders.id)"
		paid := "EXISTS (SELECT 1 FROM payments p WHERE p.order_id = orders.id AND p.status <> ?)"
		switch *filters.Status {
		case enums.OrderStatusShipped:
			query = query.Where(shipped)
		case enums.OrderStatusPaid:
			query = query.Where("NOT "+shipped).Where(paid, enums.PaymentStatusFailed)
		case enums.OrderStatusPending:
			query = query.Where("NOT "+shipped).Where("NOT "+paid, enums.PaymentStatusFailed)
		}
	}
	return query
}

func (r *repository) ReplaceDetails(ctx context.Context, orderID int64, details []models.OrderDetail) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderDetail{}).Error; err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *repository) Update(ctx context.Context, orderID int64, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&models.Order{}).Error
}
