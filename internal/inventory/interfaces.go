package inventory

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for stock levels.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByProduct(ctx context.Context, productID int64) (*models.InventoryItem, error)
	List(ctx context.Context, page pagination.Page, lowStockOnly bool) ([]models.InventoryItem, int, error)
	ListBelow(ctx context.Context, threshold int) ([]models.InventoryItem, error)
	Upsert(ctx context.Context, productID int64, quantity int) error
}

// ProductFinder confirms a product exists before stock is tracked for it.
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

// CatalogCache invalidates the cached product catalog when stock moves.
type CatalogCache interface {
	Del(ctx context.Context, keys ...string) error
	CacheKey(parts ...string) string
}

// Service defines stock-level operations.
type Service interface {
	Get(ctx context.Context, productID int64) (*Row, error)
	List(ctx context.Context, page pagination.Page, lowStockOnly bool) (pagination.Result[Row], error)
	Alerts(ctx context.Context) ([]Row, error)
	Set(ctx context.Context, productID int64, input SetInput) (*Row, error)
}
