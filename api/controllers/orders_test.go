package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ordersvc "github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type stubOrderService struct {
	lastFilters ordersvc.Filters
	lastCreate  ordersvc.CreateInput
	created     bool
}

func (s *stubOrderService) Create(ctx context.Context, input ordersvc.CreateInput) (*ordersvc.Detail, error) {
	s.created = true
	s.lastCreate = input
	detail := &ordersvc.Detail{}
	detail.ID = 42
	detail.CustomerID = input.CustomerID
	detail.SupplierID = input.SupplierID
	return detail, nil
}

func (s *stubOrderService) Get(ctx context.Context, id int64) (*ordersvc.Detail, error) {
	if id != 42 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	detail := &ordersvc.Detail{Items: []ordersvc.Item{{ID: 7, ProductID: 10, Quantity: 2}}}
	detail.ID = 42
	return detail, nil
}

func (s *stubOrderService) List(ctx context.Context, page pagination.Page, filters ordersvc.Filters) (pagination.Result[ordersvc.Summary], error) {
	s.lastFilters = filters
	return pagination.Result[ordersvc.Summary]{Items: []ordersvc.Summary{}, Page: page.Number, PageSize: page.Size}, nil
}

func (s *stubOrderService) Update(ctx context.Context, id int64, input ordersvc.UpdateInput) (*ordersvc.Detail, error) {
	panic("unimplemented")
}

func (s *stubOrderService) Delete(ctx context.Context, id int64) error {
	if id != 42 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}

func TestListOrdersParsesFilters(t *testing.T) {
	logg := testLogger()
	stub := &stubOrderService{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?status=paid&supplier_id=5&start_date=2026-01-01&end_date=2026-01-31", nil)
	rec := serve(ListOrders(stub, logg), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFilters.Status == nil || *stub.lastFilters.Status != enums.OrderStatusPaid {
		t.Fatalf("expected paid status filter, got %+v", stub.lastFilters.Status)
	}
	if stub.lastFilters.SupplierID == nil || *stub.lastFilters.SupplierID != 5 {
		t.Fatalf("expected supplier filter 5, got %+v", stub.lastFilters.SupplierID)
	}
	if stub.lastFilters.DateFrom == nil || stub.lastFilters.DateFrom.String() != "2026-01-01" {
		t.Fatalf("expected start date filter, got %+v", stub.lastFilters.DateFrom)
	}
	if stub.lastFilters.DateTo == nil || stub.lastFilters.DateTo.String() != "2026-01-31" {
		t.Fatalf("expected end date filter, got %+v", stub.lastFilters.DateTo)
	}
}

func TestListOrdersRejectsUnknownStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?status=cancelled", nil)
	rec := serve(ListOrders(&stubOrderService{}, testLogger()), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestCreateOrderReturns201(t *testing.T) {
	stub := &stubOrderService{}
	body := `{"customer_id":3,"supplier_id":5,"items":[{"product_id":10,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(CreateOrder(stub, testLogger()), req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !stub.created {
		t.Fatalf("expected Create to be invoked")
	}
	if stub.lastCreate.CustomerID != 3 || stub.lastCreate.SupplierID != 5 {
		t.Fatalf("unexpected decoded input: %+v", stub.lastCreate)
	}
}

func TestGetOrderDetailsReturnsItems(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/42/details", nil)
	req = withIDParam(req, "id", "42")

	rec := serve(GetOrderDetails(&stubOrderService{}, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data []ordersvc.Item `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != 7 {
		t.Fatalf("unexpected items payload: %+v", envelope.Data)
	}
}

func TestGetOrderRejectsBadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
	req = withIDParam(req, "id", "abc")

	rec := serve(GetOrder(&stubOrderService{}, testLogger()), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rec.Code)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/999", nil)
	req = withIDParam(req, "id", "999")

	rec := serve(GetOrder(&stubOrderService{}, testLogger()), req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
