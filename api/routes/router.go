package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stocktrak/stocktrak-backend/api/controllers"
	"github.com/stocktrak/stocktrak-backend/api/middleware"
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
	"github.com/stocktrak/stocktrak-backend/pkg/logger"
	"github.com/stocktrak/stocktrak-backend/pkg/metrics"
	pkgredis "github.com/stocktrak/stocktrak-backend/pkg/redis"
)

// Services bundles every domain service the router exposes.
type Services struct {
	Customers customers.Service
	Suppliers suppliers.Service
	Products  products.Service
	Inventory inventory.Service
	Orders    orders.Service
	Shipments shipments.Service
	Payments  payments.Service
	Dashboard dashboard.Service
	Analytics analytics.Service
}

// NewRouter assembles the full HTTP surface: health probes, metrics,
// and the versioned API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	cache *pkgredis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	var cacheP controllers.Pinger
	if cache != nil {
		cacheP = cache
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cacheP, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cache != nil {
			r.Use(middleware.Idempotency(cache, logg))
		}

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(svcs.Customers, logg))
			r.Get("/vip", controllers.ListVIPCustomers(svcs.Customers, logg))
			r.Post("/", controllers.CreateCustomer(svcs.Customers, logg))
			r.Get("/{id}", controllers.GetCustomer(svcs.Customers, logg))
			r.Get("/{id}/orders", controllers.ListCustomerOrders(svcs.Customers, svcs.Orders, logg))
			r.Put("/{id}", controllers.UpdateCustomer(svcs.Customers, logg))
			r.Delete("/{id}", controllers.DeleteCustomer(svcs.Customers, logg))
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.ListSuppliers(svcs.Suppliers, logg))
			r.Get("/performance", controllers.SupplierPerformance(svcs.Suppliers, logg))
			r.Post("/", controllers.CreateSupplier(svcs.Suppliers, logg))
			r.Get("/{id}", controllers.GetSupplier(svcs.Suppliers, logg))
			r.Put("/{id}", controllers.UpdateSupplier(svcs.Suppliers, logg))
			r.Delete("/{id}", controllers.DeleteSupplier(svcs.Suppliers, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Products, logg))
			r.Post("/", controllers.CreateProduct(svcs.Products, logg))
			r.Get("/{id}", controllers.GetProduct(svcs.Products, logg))
			r.Put("/{id}", controllers.UpdateProduct(svcs.Products, logg))
			r.Delete("/{id}", controllers.DeleteProduct(svcs.Products, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(svcs.Inventory, logg))
			r.Get("/alerts", controllers.InventoryAlerts(svcs.Inventory, logg))
			r.Get("/{product_id}", controllers.GetInventory(svcs.Inventory, logg))
			r.Put("/{product_id}", controllers.SetInventory(svcs.Inventory, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(svcs.Orders, logg))
			r.Post("/", controllers.CreateOrder(svcs.Orders, logg))
			r.Get("/{id}", controllers.GetOrder(svcs.Orders, logg))
			r.Get("/{id}/details", controllers.GetOrderDetails(svcs.Orders, logg))
			r.Put("/{id}", controllers.UpdateOrder(svcs.Orders, logg))
			r.Delete("/{id}", controllers.DeleteOrder(svcs.Orders, logg))
		})

		r.Route("/shipments", func(r chi.Router) {
			r.Get("/", controllers.ListShipments(svcs.Shipments, logg))
			r.Get("/late", controllers.LateShipments(svcs.Shipments, logg))
			r.Post("/", controllers.CreateShipment(svcs.Shipments, logg))
			r.Get("/{id}", controllers.GetShipment(svcs.Shipments, logg))
			r.Put("/{id}", controllers.UpdateShipment(svcs.Shipments, logg))
			r.Delete("/{id}", controllers.DeleteShipment(svcs.Shipments, logg))
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", controllers.ListPayments(svcs.Payments, logg))
			r.Post("/", controllers.CreatePayment(svcs.Payments, logg))
			r.Get("/{id}", controllers.GetPayment(svcs.Payments, logg))
			r.Delete("/{id}", controllers.DeletePayment(svcs.Payments, logg))
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", controllers.DashboardOverview(svcs.Dashboard, logg))
			r.Get("/monthly", controllers.DashboardMonthly(svcs.Dashboard, logg))
			r.Get("/top-products", controllers.DashboardTopProducts(svcs.Dashboard, logg))
			r.Get("/top-customers", controllers.DashboardTopCustomers(svcs.Dashboard, logg))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/sales", controllers.AnalyticsSales(svcs.Analytics, logg))
			r.Get("/products", controllers.AnalyticsProducts(svcs.Analytics, logg))
			r.Get("/customers", controllers.AnalyticsCustomers(svcs.Analytics, logg))
			r.Get("/suppliers", controllers.AnalyticsSuppliers(svcs.Analytics, logg))
			r.Get("/trends", controllers.AnalyticsTrends(svcs.Analytics, logg))
		})
	})

	return r
}
