package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/logger"
	pkgredis "github.com/stocktrak/stocktrak-backend/pkg/redis"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

const (
	overviewCacheKey = "dashboard:overview"

	windowDays  = 30
	monthsShown = 12
	topCount    = 5
)

type service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds a dashboard service. The cache is optional; without
// it every overview read recomputes the aggregates.
func NewService(repo Repository, cache Cache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo, cache: cache, cacheTTL: cacheTTL, logg: logg, now: time.Now}, nil
}

func (s *service) today() types.Date {
	return types.NewDate(s.now().UTC())
}

// Overview is served from Redis when a fresh snapshot exists; the TTL
// keeps it at most a minute stale by default.
func (s *service) Overview(ctx context.Context) (*Overview, error) {
	if s.cache != nil {
		var cached Overview
		err := s.cache.GetJSON(ctx, s.cache.CacheKey(overviewCacheKey), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, pkgredis.ErrCacheMiss) && s.logg != nil {
			s.logg.Warn(ctx, "overview cache read failed")
		}
	}

	from := s.today().AddDays(-windowDays)
	rows, err := s.repo.OrdersSince(ctx, from)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing recent orders")
	}

	overview := &Overview{Revenue: decimal.Zero}
	for _, order := range rows {
		overview.TotalOrders++
		overview.Revenue = overview.Revenue.Add(orders.Total(order))
		if orders.Status(order) == enums.OrderStatusPending {
			overview.PendingOrders++
		}
		if classify.IsLate(orders.DeliveryDays(order)) {
			overview.LateShipments++
		}
	}

	if overview.LowStockCount, err = s.repo.CountLowStock(ctx, classify.LowStockThreshold); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting low stock")
	}
	if overview.TotalCustomers, err = s.repo.CountCustomers(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting customers")
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.cache.CacheKey(overviewCacheKey), overview, s.cacheTTL); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "overview cache write failed")
		}
	}
	return overview, nil
}

// Monthly returns one row per calendar month for the trailing year,
// oldest first. Months without orders still appear with zero values.
func (s *service) Monthly(ctx context.Context) ([]MonthlyRow, error) {
	now := s.now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(monthsShown - 1), 0)

	rows, err := s.repo.OrdersSince(ctx, types.NewDate(first))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	byMonth := map[string]*MonthlyRow{}
	result := make([]MonthlyRow, 0, monthsShown)
	for i := 0; i < monthsShown; i++ {
		month := first.AddDate(0, i, 0).Format("2006-01")
		result = append(result, MonthlyRow{Month: month, Revenue: decimal.Zero})
		byMonth[month] = &result[i]
	}

	for _, order := range rows {
		month := order.OrderDate.Format("2006-01")
		row, ok := byMonth[month]
		if !ok {
			continue
		}
		row.Orders++
		row.Revenue = row.Revenue.Add(orders.Total(order))
	}
	return result, nil
}

// TopProducts ranks the five most-ordered products of the window by
// quantity.
func (s *service) TopProducts(ctx context.Context) ([]TopProduct, error) {
	rows, err := s.repo.OrdersSince(ctx, s.today().AddDays(-windowDays))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing recent orders")
	}

	byProduct := map[int64]*TopProduct{}
	for _, order := range rows {
		for _, line := range order.Details {
			entry, ok := byProduct[line.ProductID]
			if !ok {
				entry = &TopProduct{ProductID: line.ProductID, Revenue: decimal.Zero}
				if line.Product != nil {
					entry.Name = line.Product.Name
				}
				byProduct[line.ProductID] = entry
			}
			entry.Quantity += line.Quantity
			if line.Product != nil {
				entry.Revenue = entry.Revenue.Add(lineRevenue(line))
			}
		}
	}

	ranked := make([]TopProduct, 0, len(byProduct))
	for _, entry := range byProduct {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	if len(ranked) > topCount {
		ranked = ranked[:topCount]
	}
	return ranked, nil
}

// TopCustomers ranks the five highest-spending customers of the window.
func (s *service) TopCustomers(ctx context.Context) ([]TopCustomer, error) {
	rows, err := s.repo.OrdersSince(ctx, s.today().AddDays(-windowDays))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing recent orders")
	}

	byCustomer := map[int64]*TopCustomer{}
	for _, order := range rows {
		entry, ok := byCustomer[order.CustomerID]
		if !ok {
			entry = &TopCustomer{CustomerID: order.CustomerID, Spent: decimal.Zero}
			if order.Customer != nil {
				entry.Name = order.Customer.Name
			}
			byCustomer[order.CustomerID] = entry
		}
		entry.Orders++
		entry.Spent = entry.Spent.Add(orders.Total(order))
	}

	ranked := make([]TopCustomer, 0, len(byCustomer))
	for _, entry := range byCustomer {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Spent.Equal(ranked[j].Spent) {
			return ranked[i].Spent.GreaterThan(ranked[j].Spent)
		}
		return ranked[i].CustomerID < ranked[j].CustomerID
	})
	if len(ranked) > topCount {
		ranked = ranked[:topCount]
	}
	return ranked, nil
}

func lineRevenue(line models.OrderDetail) decimal.Decimal {
	return line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}
