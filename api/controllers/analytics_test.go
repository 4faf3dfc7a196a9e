package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	analyticssvc "github.com/stocktrak/stocktrak-backend/internal/analytics"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type stubAnalyticsService struct {
	lastFrom *types.Date
	lastTo   *types.Date
}

func (s *stubAnalyticsService) Sales(ctx context.Context, from, to *types.Date) ([]analyticssvc.SalesRow, error) {
	s.lastFrom, s.lastTo = from, to
	return []analyticssvc.SalesRow{}, nil
}

func (s *stubAnalyticsService) Products(ctx context.Context) ([]analyticssvc.ProductRow, error) {
	return []analyticssvc.ProductRow{{ProductID: 10, Name: "Widget"}}, nil
}

func (s *stubAnalyticsService) Customers(ctx context.Context) ([]analyticssvc.CustomerRow, error) {
	panic("unimplemented")
}

func (s *stubAnalyticsService) Suppliers(ctx context.Context) ([]analyticssvc.SupplierRow, error) {
	panic("unimplemented")
}

func (s *stubAnalyticsService) Trends(ctx context.Context) ([]analyticssvc.TrendRow, error) {
	return []analyticssvc.TrendRow{}, nil
}

func TestAnalyticsSalesParsesDateRange(t *testing.T) {
	stub := &stubAnalyticsService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sales?start_date=2026-08-01&end_date=2026-08-31", nil)

	rec := serve(AnalyticsSales(stub, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFrom == nil || stub.lastFrom.String() != "2026-08-01" {
		t.Fatalf("expected start date filter, got %+v", stub.lastFrom)
	}
	if stub.lastTo == nil || stub.lastTo.String() != "2026-08-31" {
		t.Fatalf("expected end date filter, got %+v", stub.lastTo)
	}
}

func TestAnalyticsSalesRejectsBadDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sales?start_date=yesterday", nil)
	rec := serve(AnalyticsSales(&stubAnalyticsService{}, testLogger()), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyticsProductsReturnsRows(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/products", nil)
	rec := serve(AnalyticsProducts(&stubAnalyticsService{}, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data []analyticssvc.ProductRow `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Widget" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestAnalyticsTrendsNilService(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends", nil)
	rec := serve(AnalyticsTrends(nil, testLogger()), req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
