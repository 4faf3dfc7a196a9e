package analytics

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an analytics repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Orders(ctx context.Context, from, to *types.Date) ([]models.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Supplier").
		Preload("Details.Product").
		Preload("Shipment")
	if from != nil {
		query = query.Where("order_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("order_date <= ?", *to)
	}

	var orders []models.Order
	if err := query.Order("order_date ASC, id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Inventory").
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
