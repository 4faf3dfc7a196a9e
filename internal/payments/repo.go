package payments

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a payments repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Order.Customer").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) List(ctx context.Context, page pagination.Page, filters Filters) ([]models.Payment, int, error) {
	base := r.db.WithContext(ctx).Model(&models.Payment{})
	if filters.OrderID != nil {
		base = base.Where("order_id = ?", *filters.OrderID)
	}
	if filters.DateFrom != nil {
		base = base.Where("payment_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		base = base.Where("payment_date <= ?", *filters.DateTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	lo, _ := page.Bounds(int(total))
	var payments []models.Payment
	err := base.
		Preload("Order.Customer").
		Order("payment_date DESC, id DESC").
		Offset(lo).
		Limit(page.Size).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, int(total), nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Payment{}).Error
}
