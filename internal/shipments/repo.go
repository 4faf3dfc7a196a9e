package shipments

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a shipments repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error) {
	if err := r.db.WithContext(ctx).Create(shipment).Error; err != nil {
		return nil, err
	}
	return shipment, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.WithContext(ctx).
		Preload("Order.Customer").
		Preload("Order.Supplier").
		Preload("Details.Product").
		Where("id = ?", id).
		First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *repository) FindByOrder(ctx context.Context, orderID int64) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *repository) List(ctx context.Context, page pagination.Page) ([]models.Shipment, int, error) {
	base := r.db.WithContext(ctx).Model(&models.Shipment{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	lo, _ := page.Bounds(int(total))
	var shipments []models.Shipment
	err := base.
		Preload("Order.Customer").
		Preload("Order.Supplier").
		Order("shipment_date DESC, id DESC").
		Offset(lo).
		Limit(page.Size).
		Find(&shipments).Error
	if err != nil {
		return nil, 0, err
	}
	return shipments, int(total), nil
}

func (r *repository) ListOrdersWithShipments(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Shipment").
		Order("order_date ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) ReplaceDetails(ctx context.Context, shipmentID int64, details []models.ShipmentDetail) error {
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Delete(&models.ShipmentDetail{}).Error; err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *repository) Update(ctx context.Context, shipmentID int64, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Shipment{}).
		Where("id = ?", shipmentID).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, shipmentID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", shipmentID).
		Delete(&models.Shipment{}).Error
}
