package payments

import (
	"context"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// Repository defines persistence operations for payments.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	FindByID(ctx context.Context, id int64) (*models.Payment, error)
	List(ctx context.Context, page pagination.Page, filters Filters) ([]models.Payment, int, error)
	Delete(ctx context.Context, id int64) error
}

// OrderFinder loads the paid order with its lines and prior payments so
// the overpayment guard can be evaluated.
type OrderFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Order, error)
}

// Service defines payment-level operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Row, error)
	Get(ctx context.Context, id int64) (*Row, error)
	List(ctx context.Context, page pagination.Page, filters Filters) (pagination.Result[Row], error)
	Delete(ctx context.Context, id int64) error
}
