package dashboard

import (
	"context"
	"time"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Repository reads the raw data the dashboard aggregates over.
type Repository interface {
	OrdersSince(ctx context.Context, from types.Date) ([]models.Order, error)
	CountCustomers(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context, threshold int) (int, error)
}

// Cache holds the short-lived overview snapshot.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// Service defines the dashboard read operations.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
	Monthly(ctx context.Context) ([]MonthlyRow, error)
	TopProducts(ctx context.Context) ([]TopProduct, error)
	TopCustomers(ctx context.Context) ([]TopCustomer, error)
}
