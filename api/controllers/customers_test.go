package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	customersvc "github.com/stocktrak/stocktrak-backend/internal/customers"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type stubCustomerService struct {
	lastQuery string
}

func (s *stubCustomerService) Create(ctx context.Context, input customersvc.CreateInput) (*customersvc.Detail, error) {
	panic("unimplemented")
}

func (s *stubCustomerService) Get(ctx context.Context, id int64) (*customersvc.Detail, error) {
	if id != 3 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	detail := &customersvc.Detail{}
	detail.ID = 3
	detail.Name = "Ada"
	return detail, nil
}

func (s *stubCustomerService) List(ctx context.Context, page pagination.Page, query string) (pagination.Result[customersvc.Summary], error) {
	s.lastQuery = query
	return pagination.Result[customersvc.Summary]{Items: []customersvc.Summary{}}, nil
}

func (s *stubCustomerService) ListVIPs(ctx context.Context) ([]customersvc.Detail, error) {
	detail := customersvc.Detail{IsVIP: true}
	detail.ID = 3
	return []customersvc.Detail{detail}, nil
}

func (s *stubCustomerService) Update(ctx context.Context, id int64, input customersvc.UpdateInput) (*customersvc.Detail, error) {
	panic("unimplemented")
}

func (s *stubCustomerService) Delete(ctx context.Context, id int64) error {
	panic("unimplemented")
}

func TestListCustomersTrimsSearch(t *testing.T) {
	stub := &stubCustomerService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers?search=%20ada%20", nil)

	rec := serve(ListCustomers(stub, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastQuery != "ada" {
		t.Fatalf("expected trimmed search %q, got %q", "ada", stub.lastQuery)
	}
}

func TestListCustomerOrdersChecksCustomer(t *testing.T) {
	customers := &stubCustomerService{}
	orders := &stubOrderService{}
	logg := testLogger()

	t.Run("unknown customer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/99/orders", nil)
		req = withIDParam(req, "id", "99")
		rec := serve(ListCustomerOrders(customers, orders, logg), req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown customer, got %d", rec.Code)
		}
	})

	t.Run("scopes order list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/3/orders", nil)
		req = withIDParam(req, "id", "3")
		rec := serve(ListCustomerOrders(customers, orders, logg), req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if orders.lastFilters.CustomerID == nil || *orders.lastFilters.CustomerID != 3 {
			t.Fatalf("expected order filter scoped to customer 3, got %+v", orders.lastFilters.CustomerID)
		}
	})
}

func TestListVIPCustomers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/vip", nil)
	rec := serve(ListVIPCustomers(&stubCustomerService{}, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetCustomerNilService(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/3", nil)
	req = withIDParam(req, "id", "3")
	rec := serve(GetCustomer(nil, testLogger()), req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 with nil service, got %d", rec.Code)
	}
}
