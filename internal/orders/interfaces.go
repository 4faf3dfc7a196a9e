package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for orders and their lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, page pagination.Page, filters Filters) ([]models.Order, int, error)
	ReplaceDetails(ctx context.Context, orderID int64, details []models.OrderDetail) error
	Update(ctx context.Context, orderID int64, updates map[string]any) error
	Delete(ctx context.Context, orderID int64) error
}

// CustomerFinder resolves the customer an order belongs to.
type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
}

// SupplierFinder resolves the supplier an order is placed with.
type SupplierFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Supplier, error)
}

// ProductFinder resolves the products referenced by order lines.
type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
}

// Service defines order-level operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Detail, error)
	Get(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, page pagination.Page, filters Filters) (pagination.Result[Summary], error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Detail, error)
	Delete(ctx context.Context, id int64) error
}
