package analytics

import (
	"context"

	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Repository reads the raw data the analytics reports aggregate over.
type Repository interface {
	Orders(ctx context.Context, from, to *types.Date) ([]models.Order, error)
	Products(ctx context.Context) ([]models.Product, error)
}

// Service defines the analytics read operations.
type Service interface {
	Sales(ctx context.Context, from, to *types.Date) ([]SalesRow, error)
	Products(ctx context.Context) ([]ProductRow, error)
	Customers(ctx context.Context) ([]CustomerRow, error)
	Suppliers(ctx context.Context) ([]SupplierRow, error)
	Trends(ctx context.Context) ([]TrendRow, error)
}
