package products

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for products.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// SupplierFinder resolves the supplier a product belongs to.
type SupplierFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Supplier, error)
}

// Cache is the subset of the Redis client the catalog snapshot uses.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(parts ...string) string
}

// Service defines product-level operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Row, error)
	Get(ctx context.Context, id int64) (*Row, error)
	List(ctx context.Context, page pagination.Page, filters Filters) (pagination.Result[Row], error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Row, error)
	Delete(ctx context.Context, id int64) error
}
