package dashboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a dashboard repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrdersSince(ctx context.Context, from types.Date) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details.Product").
		Preload("Shipment").
		Preload("Payments").
		Where("order_date >= ?", from).
		Order("order_date ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) CountCustomers(ctx context.Context) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error
	return int(total), err
}

func (r *repository) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("quantity < ?", threshold).
		Count(&total).Error
	return int(total), err
}
