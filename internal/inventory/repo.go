package inventory

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an inventory repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindByProduct(ctx context.Context, productID int64) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) List(ctx context.Context, page pagination.Page, lowStockOnly bool) ([]models.InventoryItem, int, error) {
	base := r.db.WithContext(ctx).Model(&models.InventoryItem{})
	if lowStockOnly {
		base = base.Where("quantity < ?", classify.LowStockThreshold)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	lo, _ := page.Bounds(int(total))
	var items []models.InventoryItem
	err := base.
		Preload("Product").
		Order("quantity ASC, product_id ASC").
		Offset(lo).
		Limit(page.Size).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (r *repository) ListBelow(ctx context.Context, threshold int) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("quantity < ?", threshold).
		Order("quantity ASC, product_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Upsert(ctx context.Context, productID int64, quantity int) error {
	item := models.InventoryItem{ProductID: productID, Quantity: quantity}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&item).Error
}
