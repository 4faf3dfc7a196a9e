package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

func mustDate(t *testing.T, value string) types.Date {
	t.Helper()
	d, err := types.ParseDate(value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

func TestCreateOrderEndToEnd(t *testing.T) {
	var received OrderInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode payload: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{
			"id":42,"customer_id":3,"supplier_id":5,
			"total_amount":"120.00","amount_paid":"0",
			"total_items":2,"total_quantity":3,
			"status":"pending","order_date":"2026-09-01",
			"items":[
				{"order_detail_id":1,"product_id":10,"product_name":"Pressure sensor","unit_price":"50.00","quantity":2,"total_price":"100.00"},
				{"order_detail_id":2,"product_id":11,"product_name":"Cable","unit_price":"20.00","quantity":1,"total_price":"20.00"}
			]}}`))
	}))
	defer server.Close()

	draft := NewOrderDraft()
	draft.CustomerID = 3
	draft.SupplierID = 5
	draft.AddItem(product(10, "Pressure sensor", "50.00"), 2)
	draft.AddItem(product(11, "Cable", "20.00"), 1)

	if got := draft.Total(); !got.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("expected draft total 120.00, got %s", got)
	}

	input, err := draft.Build()
	if err != nil {
		t.Fatalf("build draft: %v", err)
	}

	api := New(server.URL)
	order, err := api.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if received.CustomerID != 3 || received.SupplierID != 5 {
		t.Fatalf("unexpected payload parties: %+v", received)
	}
	if len(received.Items) != 2 ||
		received.Items[0].ProductID != 10 || received.Items[0].Quantity != 2 ||
		received.Items[1].ProductID != 11 || received.Items[1].Quantity != 1 {
		t.Fatalf("unexpected payload items: %+v", received.Items)
	}

	if order.ID != 42 {
		t.Fatalf("expected order 42, got %d", order.ID)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("expected total 120.00, got %s", order.TotalAmount)
	}
	if len(order.Items) != 2 || order.Items[0].UnitPrice.String() != "50" {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}
}

func TestErrorEnvelopeBecomesTypedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"STATE_CONFLICT","message":"payment exceeds order total"}}`))
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.CreatePayment(context.Background(), PaymentInput{OrderID: 42, Amount: decimal.RequireFromString("40.01")})
	if err == nil {
		t.Fatalf("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %T", err)
	}
	if typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state_conflict, got %s", typed.Code())
	}
	if typed.Message() != "payment exceeds order total" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestNonEnvelopeErrorStillFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.Order(context.Background(), 42)
	if err == nil {
		t.Fatalf("expected error for non-envelope failure")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeInternal {
		t.Fatalf("expected internal code, got %s", pkgerrors.CodeOf(err))
	}
}

func TestOrderListQueryEncoding(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"items":[],"total":0,"page":1,"page_size":10,"total_pages":1}}`))
	}))
	defer server.Close()

	api := New(server.URL)
	customerID := int64(3)
	params := OrderParams{CustomerID: &customerID}
	params.Page = 2
	if _, err := api.Orders(context.Background(), params); err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if gotQuery != "customer_id=3&page=2" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

func TestSalesAnalyticsQueryAndDecode(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"sale_date":"2026-08-02","orders":2,"customers":2,"units_sold":4,"revenue":"160.00","prev_revenue":"100.00","growth_rate":60}]}`))
	}))
	defer server.Close()

	api := New(server.URL)
	start := mustDate(t, "2026-08-01")
	rows, err := api.SalesAnalytics(context.Background(), SalesParams{StartDate: &start})
	if err != nil {
		t.Fatalf("sales analytics: %v", err)
	}
	if gotPath != "/api/v1/analytics/sales" || gotQuery != "start_date=2026-08-01" {
		t.Fatalf("unexpected request %s?%s", gotPath, gotQuery)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if !row.Revenue.Equal(decimal.RequireFromString("160.00")) {
		t.Fatalf("unexpected revenue %s", row.Revenue)
	}
	if row.PrevRevenue == nil || !row.PrevRevenue.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected prev revenue %v", row.PrevRevenue)
	}
	if row.GrowthRate == nil || *row.GrowthRate != 60 {
		t.Fatalf("unexpected growth %v", row.GrowthRate)
	}
}

func TestCanRecordPayment(t *testing.T) {
	order := Order{
		TotalAmount: decimal.RequireFromString("120.00"),
		AmountPaid:  decimal.RequireFromString("119.99"),
	}
	if !CanRecordPayment(order) {
		t.Fatalf("expected payment allowed below total")
	}

	order.AmountPaid = decimal.RequireFromString("120.00")
	if CanRecordPayment(order) {
		t.Fatalf("expected payment blocked once fully paid")
	}
}
