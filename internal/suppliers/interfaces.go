package suppliers

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for suppliers.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	FindByID(ctx context.Context, id int64) (*models.Supplier, error)
	FindByEmail(ctx context.Context, email string) (*models.Supplier, error)
	List(ctx context.Context, page pagination.Page, query string) ([]models.Supplier, int, error)
	ListWithOrders(ctx context.Context) ([]models.Supplier, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// Service defines supplier-level operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Summary, error)
	Get(ctx context.Context, id int64) (*Summary, error)
	List(ctx context.Context, page pagination.Page, query string) (pagination.Result[Summary], error)
	Performance(ctx context.Context) ([]Performance, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Summary, error)
	Delete(ctx context.Context, id int64) error
}
