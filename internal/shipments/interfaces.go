package shipments

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for shipments.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error)
	FindByID(ctx context.Context, id int64) (*models.Shipment, error)
	FindByOrder(ctx context.Context, orderID int64) (*models.Shipment, error)
	List(ctx context.Context, page pagination.Page) ([]models.Shipment, int, error)
	ListOrdersWithShipments(ctx context.Context) ([]models.Order, error)
	ReplaceDetails(ctx context.Context, shipmentID int64, details []models.ShipmentDetail) error
	Update(ctx context.Context, shipmentID int64, updates map[string]any) error
	Delete(ctx context.Context, shipmentID int64) error
}

// OrderFinder resolves the order a shipment fulfills.
type OrderFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Order, error)
}

// ProductFinder resolves the products referenced by shipment lines.
type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
}

// Service defines shipment-level operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Detail, error)
	Get(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, page pagination.Page) (pagination.Result[Summary], error)
	Late(ctx context.Context) ([]LateRow, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Detail, error)
	Delete(ctx context.Context, id int64) error
}
