package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lynnadornets/adornets-backend/api/controllers"
	"github.com/lynnadornets/adornets-backend/api/middleware"
	"github.com/lynnadornets/adornets-backend/internal/cart"
	"github.com/lynnadornets/adornets-backend/internal/catalog"
	checkoutsvc "github.com/lynnadornets/adornets-backend/internal/checkout"
	"github.com/lynnadornets/adornets-backend/pkg/config"
	"github.com/lynnadornets/adornets-backend/pkg/logger"
	"github.com/lynnadornets/adornets-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	feed *catalog.Feed,
	carts *cart.Sessions,
	checkoutService checkoutsvc.Service,
	storefrontMetrics *metrics.StorefrontMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogList(feed, logg))
		r.Get("/products/{productId}", controllers.CatalogDetail(feed, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session.CookieName, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(carts, logg))
			r.Delete("/", controllers.CartClear(carts, logg, storefrontMetrics))
			r.Post("/items", controllers.CartAddItem(carts, feed, logg, storefrontMetrics))
			r.Patch("/items/{productId}", controllers.CartSetQuantity(carts, logg, storefrontMetrics))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(carts, logg, storefrontMetrics))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutState(checkoutService, logg))
			r.Post("/", controllers.CheckoutBegin(checkoutService, logg))
			r.Post("/submit", controllers.CheckoutSubmit(checkoutService, logg))
			r.Post("/cancel", controllers.CheckoutCancel(checkoutService, logg))
			r.Delete("/", controllers.CheckoutClose(checkoutService, logg))
		})
	})

	return r
}
