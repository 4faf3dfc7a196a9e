package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/stocktrak/stocktrak-backend/api/routes"
	"github.com/stocktrak/stocktrak-backend/internal/analytics"
	"github.com/stocktrak/stocktrak-backend/internal/customers"
	"github.com/stocktrak/stocktrak-backend/internal/dashboard"
	"github.com/stocktrak/stocktrak-backend/internal/inventory"
	"github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/internal/payments"
	"github.com/stocktrak/stocktrak-backend/internal/products"
	"github.com/stocktrak/stocktrak-backend/internal/shipments"
	"github.com/stocktrak/stocktrak-backend/internal/suppliers"
	"github.com/stocktrak/stocktrak-backend/pkg/config"
	"github.com/stocktrak/stocktrak-backend/pkg/db"
	"github.com/stocktrak/stocktrak-backend/pkg/logger"
	"github.com/stocktrak/stocktrak-backend/pkg/metrics"
	"github.com/stocktrak/stocktrak-backend/pkg/migrate"
	pkgredis "github.com/stocktrak/stocktrak-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := pkgredis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	closeAll := func() {
		err := multierr.Combine(redisClient.Close(), dbClient.Close())
		if err != nil {
			logg.Error(context.Background(), "error closing resources", err)
		}
	}

	customersRepo := customers.NewRepository(dbClient.DB())
	suppliersRepo := suppliers.NewRepository(dbClient.DB())
	productsRepo := products.NewRepository(dbClient.DB())
	inventoryRepo := inventory.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())
	shipmentsRepo := shipments.NewRepository(dbClient.DB())
	paymentsRepo := payments.NewRepository(dbClient.DB())
	dashboardRepo := dashboard.NewRepository(dbClient.DB())
	analyticsRepo := analytics.NewRepository(dbClient.DB())

	customersSvc, err := customers.NewService(customersRepo)
	requireService(logg, "customers", err)
	suppliersSvc, err := suppliers.NewService(suppliersRepo)
	requireService(logg, "suppliers", err)
	productsSvc, err := products.NewService(productsRepo, suppliersRepo, redisClient, cfg.Cache.ProductListTTL, logg)
	requireService(logg, "products", err)
	inventorySvc, err := inventory.NewService(inventoryRepo, productsRepo, redisClient)
	requireService(logg, "inventory", err)
	ordersSvc, err := orders.NewService(ordersRepo, dbClient, customersRepo, suppliersRepo, productsRepo)
	requireService(logg, "orders", err)
	shipmentsSvc, err := shipments.NewService(shipmentsRepo, dbClient, ordersRepo, productsRepo)
	requireService(logg, "shipments", err)
	paymentsSvc, err := payments.NewService(paymentsRepo, ordersRepo)
	requireService(logg, "payments", err)
	dashboardSvc, err := dashboard.NewService(dashboardRepo, redisClient, cfg.Cache.DashboardOverviewTTL, logg)
	requireService(logg, "dashboard", err)
	analyticsSvc, err := analytics.NewService(analyticsRepo)
	requireService(logg, "analytics", err)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, registry, routes.Services{
		Customers: customersSvc,
		Suppliers: suppliersSvc,
		Products:  productsSvc,
		Inventory: inventorySvc,
		Orders:    ordersSvc,
		Shipments: shipmentsSvc,
		Payments:  paymentsSvc,
		Dashboard: dashboardSvc,
		Analytics: analyticsSvc,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeAll()
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	closeAll()
}

func requireService(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+name+" service", err)
	os.Exit(1)
}
