package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for customers.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindWithOrders(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context, page pagination.Page, query string) ([]models.Customer, int, error)
	ListWithOrders(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// Service defines customer-level operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Detail, error)
	Get(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, page pagination.Page, query string) (pagination.Result[Summary], error)
	ListVIPs(ctx context.Context) ([]Detail, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Detail, error)
	Delete(ctx context.Context, id int64) error
}
