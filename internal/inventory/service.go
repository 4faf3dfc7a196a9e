package inventory

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/internal/products"
	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type service struct {
	repo     Repository
	products ProductFinder
	cache    CatalogCache
}

// NewService builds an inventory service. The cache is optional; when
// present the product catalog snapshot is dropped on every stock write.
func NewService(repo Repository, finder ProductFinder, cache CatalogCache) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if finder == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{repo: repo, products: finder, cache: cache}, nil
}

func (s *service) Get(ctx context.Context, productID int64) (*Row, error) {
	item, err := s.repo.FindByProduct(ctx, productID)
	if err == nil {
		row := toRow(*item)
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading stock level")
	}

	// A product without an inventory row reads as zero stock.
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up product")
	}
	row := toRow(models.InventoryItem{ProductID: productID, Product: product})
	return &row, nil
}

func (s *service) List(ctx context.Context, page pagination.Page, lowStockOnly bool) (pagination.Result[Row], error) {
	items, total, err := s.repo.List(ctx, page, lowStockOnly)
	if err != nil {
		return pagination.Result[Row]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing stock levels")
	}
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item))
	}
	return pagination.NewResult(rows, total, page), nil
}

// Alerts returns every product below the low-stock threshold, lowest
// quantity first.
func (s *service) Alerts(ctx context.Context) ([]Row, error) {
	items, err := s.repo.ListBelow(ctx, classify.LowStockThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing stock alerts")
	}
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item))
	}
	return rows, nil
}

func (s *service) Set(ctx context.Context, productID int64, input SetInput) (*Row, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up product")
	}

	if err := s.repo.Upsert(ctx, productID, input.Quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing stock level")
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, s.cache.CacheKey(products.CatalogCacheKey))
	}
	return s.Get(ctx, productID)
}

func toRow(item models.InventoryItem) Row {
	row := Row{
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		StockStatus: classify.StockStatus(item.Quantity),
	}
	if item.Product != nil {
		row.ProductName = item.Product.Name
	}
	return row
}
