package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocktrak/stocktrak-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func TestHealthLiveSetsEnvHeader(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	rec := serve(HealthLive(cfg), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-StockTrak-Env"); got != "test" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	logg := testLogger()

	t.Run("ready", func(t *testing.T) {
		rec := serve(HealthReady(cfg, stubPinger{}, stubPinger{}, logg), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("database down", func(t *testing.T) {
		db := stubPinger{err: errors.New("connection refused")}
		rec := serve(HealthReady(cfg, db, stubPinger{}, logg), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 when database is down, got %d", rec.Code)
		}
	})

	t.Run("cache down", func(t *testing.T) {
		cache := stubPinger{err: errors.New("connection refused")}
		rec := serve(HealthReady(cfg, stubPinger{}, cache, logg), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 when cache is down, got %d", rec.Code)
		}
	})
}
