package products

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/logger"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	pkgredis "github.com/stocktrak/stocktrak-backend/pkg/redis"
)

// CatalogCacheKey names the cached whole-catalog snapshot. Anything
// that changes product or stock data must invalidate it.
const CatalogCacheKey = "products:catalog"

type service struct {
	repo      Repository
	suppliers SupplierFinder
	cache     Cache
	cacheTTL  time.Duration
	logg      *logger.Logger
}

// NewService builds a products service. The cache is optional; without
// it every list read hits the database.
func NewService(repo Repository, suppliers SupplierFinder, cache Cache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if suppliers == nil {
		return nil, fmt.Errorf("supplier finder required")
	}
	return &service{repo: repo, suppliers: suppliers, cache: cache, cacheTTL: cacheTTL, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Row, error) {
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	if input.SupplierID != nil {
		if _, err := s.suppliers.FindByID(ctx, *input.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up supplier")
		}
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		SupplierID:  input.SupplierID,
		Inventory:   &models.InventoryItem{Quantity: input.Quantity},
	}
	if _, err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}

	s.invalidateCatalog(ctx)
	return s.Get(ctx, product.ID)
}

func (s *service) Get(ctx context.Context, id int64) (*Row, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	row := toRow(*product)
	return &row, nil
}

// List filters and paginates the catalog snapshot. The snapshot is read
// through Redis so repeated catalog reads skip the database.
func (s *service) List(ctx context.Context, page pagination.Page, filters Filters) (pagination.Result[Row], error) {
	rows, err := s.catalog(ctx)
	if err != nil {
		return pagination.Result[Row]{}, err
	}

	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if !matches(row, filters) {
			continue
		}
		filtered = append(filtered, row)
	}
	return pagination.NewResult(pagination.Slice(filtered, page), len(filtered), page), nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Row, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Price != nil {
		if input.Price.LessThanOrEqual(decimal.Zero) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		updates["price"] = *input.Price
	}
	if input.SupplierID != nil {
		if _, err := s.suppliers.FindByID(ctx, *input.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up supplier")
		}
		updates["supplier_id"] = *input.SupplierID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
		}
		s.invalidateCatalog(ctx)
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *service) catalog(ctx context.Context) ([]Row, error) {
	if s.cache != nil {
		var cached []Row
		err := s.cache.GetJSON(ctx, s.cache.CacheKey(CatalogCacheKey), &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, pkgredis.ErrCacheMiss) && s.logg != nil {
			s.logg.Warn(ctx, "catalog cache read failed")
		}
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	rows := make([]Row, 0, len(products))
	for _, product := range products {
		rows = append(rows, toRow(product))
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.cache.CacheKey(CatalogCacheKey), rows, s.cacheTTL); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "catalog cache write failed")
		}
	}
	return rows, nil
}

func (s *service) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cache.CacheKey(CatalogCacheKey)); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "catalog cache invalidation failed")
	}
}

func matches(row Row, filters Filters) bool {
	if q := strings.TrimSpace(filters.Query); q != "" {
		if !strings.Contains(strings.ToLower(row.Name), strings.ToLower(q)) {
			return false
		}
	}
	if c := strings.TrimSpace(filters.Category); c != "" {
		if row.Category == nil || !strings.EqualFold(*row.Category, c) {
			return false
		}
	}
	if filters.SupplierID != nil {
		if row.SupplierID == nil || *row.SupplierID != *filters.SupplierID {
			return false
		}
	}
	return true
}

func toRow(product models.Product) Row {
	row := Row{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		SupplierID:  product.SupplierID,
	}
	if product.Supplier != nil {
		row.SupplierName = product.Supplier.Name
	}
	if product.Inventory != nil {
		row.Quantity = product.Inventory.Quantity
	}
	row.StockStatus = classify.StockStatus(row.Quantity)
	return row
}
