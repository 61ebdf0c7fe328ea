package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/algonquin-pet-store/product-service/internal/handlers"
	"github.com/algonquin-pet-store/product-service/internal/metrics"
	"github.com/algonquin-pet-store/product-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// requestTimeout bounds the time spent in a single handler
const requestTimeout = 60 * time.Second

// CORSOptions allows any origin to GET the public routes
func CORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

// NewRouter builds the public router. Only GET /products is routed;
// everything else gets chi's default 404 or 405 response.
func NewRouter(productHandler *handlers.ProductHandler, m *metrics.Metrics, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics(m))
	r.Use(chimiddleware.Timeout(requestTimeout))

	// CORS runs on the mux so preflight OPTIONS requests are answered before routing
	r.Use(cors.Handler(CORSOptions()))

	r.Get("/products", productHandler.ListProducts)

	return r
}

// NewOpsRouter builds the router for the ops listener
func NewOpsRouter(healthHandler *handlers.HealthHandler, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)

	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
