package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type service struct {
	repo Repository
}

// NewService builds an analytics service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("analytics repository required")
	}
	return &service{repo: repo}, nil
}

// Sales aggregates orders per day inside the optional date range,
// newest day first. Each row carries the previous day's revenue and
// the percentage change against it.
func (s *service) Sales(ctx context.Context, from, to *types.Date) ([]SalesRow, error) {
	rows, err := s.repo.Orders(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	byDay := map[string]*SalesRow{}
	customers := map[string]map[int64]struct{}{}
	series := make([]*SalesRow, 0)
	for _, order := range rows {
		day := order.OrderDate.String()
		entry, ok := byDay[day]
		if !ok {
			entry = &SalesRow{Date: order.OrderDate, Revenue: decimal.Zero}
			byDay[day] = entry
			customers[day] = map[int64]struct{}{}
			series = append(series, entry)
		}
		entry.Orders++
		customers[day][order.CustomerID] = struct{}{}
		for _, line := range order.Details {
			entry.UnitsSold += line.Quantity
		}
		entry.Revenue = entry.Revenue.Add(orders.Total(order))
	}

	// repo orders ascend by date, so the series is already chronological
	result := make([]SalesRow, 0, len(series))
	for i, entry := range series {
		entry.Customers = len(customers[entry.Date.String()])
		if i > 0 {
			prev := series[i-1].Revenue
			entry.PrevRevenue = &prev
			entry.GrowthRate = growthRate(entry.Revenue, prev)
		}
		result = append(result, *entry)
	}
	reverseRows(result)
	return result, nil
}

// Products reports lifetime demand per catalog item sorted by revenue.
// MonthlyVelocity is units sold per active month, not per calendar
// month, matching how demand is read for reorder decisions.
func (s *service) Products(ctx context.Context) ([]ProductRow, error) {
	catalog, err := s.repo.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	rows, err := s.repo.Orders(ctx, nil, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	type productAgg struct {
		orders map[int64]struct{}
		months map[string]struct{}
		units  int
		lines  int
	}
	aggs := map[int64]*productAgg{}
	for _, order := range rows {
		month := order.OrderDate.Format("2006-01")
		for _, line := range order.Details {
			agg, ok := aggs[line.ProductID]
			if !ok {
				agg = &productAgg{orders: map[int64]struct{}{}, months: map[string]struct{}{}}
				aggs[line.ProductID] = agg
			}
			agg.orders[order.ID] = struct{}{}
			agg.months[month] = struct{}{}
			agg.units += line.Quantity
			agg.lines++
		}
	}

	result := make([]ProductRow, 0, len(catalog))
	for _, product := range catalog {
		row := ProductRow{
			ProductID:    product.ID,
			Name:         product.Name,
			TotalRevenue: decimal.Zero,
		}
		if product.Inventory != nil {
			row.CurrentStock = product.Inventory.Quantity
		}
		if agg, ok := aggs[product.ID]; ok {
			row.OrderCount = len(agg.orders)
			row.TotalUnits = agg.units
			row.TotalRevenue = product.Price.Mul(decimal.NewFromInt(int64(agg.units)))
			row.AvgOrderSize = float64(agg.units) / float64(agg.lines)
			row.MonthlyVelocity = float64(agg.units) / float64(len(agg.months))
		}
		result = append(result, row)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].TotalRevenue.Equal(result[j].TotalRevenue) {
			return result[i].TotalRevenue.GreaterThan(result[j].TotalRevenue)
		}
		return result[i].ProductID < result[j].ProductID
	})
	return result, nil
}

// Customers summarizes lifetime purchase history per customer, biggest
// spender first. Customers without orders are omitted.
func (s *service) Customers(ctx context.Context) ([]CustomerRow, error) {
	rows, err := s.repo.Orders(ctx, nil, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	byCustomer := map[int64]*CustomerRow{}
	for _, order := range rows {
		entry, ok := byCustomer[order.CustomerID]
		if !ok {
			entry = &CustomerRow{
				CustomerID: order.CustomerID,
				TotalSpent: decimal.Zero,
				FirstOrder: order.OrderDate,
				LastOrder:  order.OrderDate,
			}
			if order.Customer != nil {
				entry.Name = order.Customer.Name
			}
			byCustomer[order.CustomerID] = entry
		}
		entry.TotalOrders++
		entry.TotalSpent = entry.TotalSpent.Add(orders.Total(order))
		if order.OrderDate.Before(entry.FirstOrder.Time) {
			entry.FirstOrder = order.OrderDate
		}
		if entry.LastOrder.Before(order.OrderDate.Time) {
			entry.LastOrder = order.OrderDate
		}
	}

	result := make([]CustomerRow, 0, len(byCustomer))
	for _, entry := range byCustomer {
		entry.AvgOrderValue = entry.TotalSpent.Div(decimal.NewFromInt(int64(entry.TotalOrders)))
		entry.LifetimeDays = entry.LastOrder.DaysSince(entry.FirstOrder)
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TotalSpent.Equal(result[j].TotalSpent) {
			return result[i].TotalSpent.GreaterThan(result[j].TotalSpent)
		}
		return result[i].CustomerID < result[j].CustomerID
	})
	return result, nil
}

// Suppliers grades each supplier across its full order history, highest
// order value first. Suppliers without orders are omitted.
func (s *service) Suppliers(ctx context.Context) ([]SupplierRow, error) {
	rows, err := s.repo.Orders(ctx, nil, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	type supplierAgg struct {
		row           SupplierRow
		deliveryDays  int
		shippedOrders int
	}
	bySupplier := map[int64]*supplierAgg{}
	for _, order := range rows {
		agg, ok := bySupplier[order.SupplierID]
		if !ok {
			agg = &supplierAgg{row: SupplierRow{SupplierID: order.SupplierID, TotalValue: decimal.Zero}}
			if order.Supplier != nil {
				agg.row.Name = order.Supplier.Name
			}
			bySupplier[order.SupplierID] = agg
		}
		agg.row.TotalOrders++
		for _, line := range order.Details {
			agg.row.TotalUnits += line.Quantity
		}
		agg.row.TotalValue = agg.row.TotalValue.Add(orders.Total(order))
		if order.Shipment != nil {
			agg.deliveryDays += order.Shipment.ShipmentDate.DaysSince(order.OrderDate)
			agg.shippedOrders++
		}
	}

	result := make([]SupplierRow, 0, len(bySupplier))
	for _, agg := range bySupplier {
		row := agg.row
		var avg float64
		if agg.shippedOrders > 0 {
			avg = float64(agg.deliveryDays) / float64(agg.shippedOrders)
			row.AvgDeliveryDays = &avg
		}
		row.AvgOrderValue = row.TotalValue.Div(decimal.NewFromInt(int64(row.TotalOrders)))
		row.Rating = classify.SupplierRating(avg)
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TotalValue.Equal(result[j].TotalValue) {
			return result[i].TotalValue.GreaterThan(result[j].TotalValue)
		}
		return result[i].SupplierID < result[j].SupplierID
	})
	return result, nil
}

// Trends aggregates orders per calendar month, newest month first, with
// month-over-month revenue comparison.
func (s *service) Trends(ctx context.Context) ([]TrendRow, error) {
	rows, err := s.repo.Orders(ctx, nil, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	type monthAgg struct {
		row       TrendRow
		customers map[int64]struct{}
		products  map[int64]struct{}
	}
	byMonth := map[string]*monthAgg{}
	series := make([]*monthAgg, 0)
	for _, order := range rows {
		month := order.OrderDate.Format("2006-01")
		agg, ok := byMonth[month]
		if !ok {
			agg = &monthAgg{
				row:       TrendRow{Month: month, Revenue: decimal.Zero},
				customers: map[int64]struct{}{},
				products:  map[int64]struct{}{},
			}
			byMonth[month] = agg
			series = append(series, agg)
		}
		agg.row.Orders++
		agg.customers[order.CustomerID] = struct{}{}
		for _, line := range order.Details {
			agg.row.Units += line.Quantity
			agg.products[line.ProductID] = struct{}{}
		}
		agg.row.Revenue = agg.row.Revenue.Add(orders.Total(order))
	}

	result := make([]TrendRow, 0, len(series))
	for i, agg := range series {
		row := agg.row
		row.Customers = len(agg.customers)
		row.UniqueProducts = len(agg.products)
		if i > 0 {
			prev := series[i-1].row.Revenue
			row.PrevRevenue = &prev
			row.RevenueGrowth = growthRate(row.Revenue, prev)
		}
		row.AvgOrderValue = row.Revenue.Div(decimal.NewFromInt(int64(row.Orders)))
		row.AvgUnitsPerOrder = float64(row.Units) / float64(row.Orders)
		result = append(result, row)
	}
	reverseRows(result)
	return result, nil
}

// growthRate computes the percentage change from prev to current, nil
// when prev is zero.
func growthRate(current, prev decimal.Decimal) *float64 {
	if prev.IsZero() {
		return nil
	}
	rate, _ := current.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Float64()
	return &rate
}

func reverseRows[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
