package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	paymentsvc "github.com/stocktrak/stocktrak-backend/internal/payments"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

type stubPaymentService struct {
	lastFilters paymentsvc.Filters
	lastCreate  paymentsvc.CreateInput
}

func (s *stubPaymentService) Create(ctx context.Context, input paymentsvc.CreateInput) (*paymentsvc.Row, error) {
	s.lastCreate = input
	return &paymentsvc.Row{ID: 1, OrderID: input.OrderID, Amount: input.Amount}, nil
}

func (s *stubPaymentService) Get(ctx context.Context, id int64) (*paymentsvc.Row, error) {
	panic("unimplemented")
}

func (s *stubPaymentService) List(ctx context.Context, page pagination.Page, filters paymentsvc.Filters) (pagination.Result[paymentsvc.Row], error) {
	s.lastFilters = filters
	return pagination.Result[paymentsvc.Row]{}, nil
}

func (s *stubPaymentService) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestListPaymentsParsesFilters(t *testing.T) {
	stub := &stubPaymentService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments?order_id=42&start_date=2026-02-01", nil)

	rec := serve(ListPayments(stub, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFilters.OrderID == nil || *stub.lastFilters.OrderID != 42 {
		t.Fatalf("expected order filter 42, got %+v", stub.lastFilters.OrderID)
	}
	if stub.lastFilters.DateFrom == nil || stub.lastFilters.DateFrom.String() != "2026-02-01" {
		t.Fatalf("expected start date filter, got %+v", stub.lastFilters.DateFrom)
	}
}

func TestListPaymentsRejectsBadOrderID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments?order_id=zero", nil)
	rec := serve(ListPayments(&stubPaymentService{}, testLogger()), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreatePaymentReturns201(t *testing.T) {
	stub := &stubPaymentService{}
	body := `{"order_id":42,"amount":"25.00","method":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(CreatePayment(stub, testLogger()), req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.lastCreate.OrderID != 42 || !stub.lastCreate.Amount.Equal(mustDecimal(t, "25.00")) {
		t.Fatalf("unexpected decoded input: %+v", stub.lastCreate)
	}
}

func TestDeletePayment(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/payments/1", nil)
	req = withIDParam(req, "id", "1")

	rec := serve(DeletePayment(&stubPaymentService{}, testLogger()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "deleted") {
		t.Fatalf("expected deleted status in body, got %s", rec.Body.String())
	}
}
