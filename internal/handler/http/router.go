package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oskarlind/shopthelook/internal/service"
	"github.com/oskarlind/shopthelook/pkg/health"
	"github.com/oskarlind/shopthelook/pkg/middleware"
)

// NewRouter creates a chi router with all widget API routes registered.
func NewRouter(
	widgetService *service.WidgetService,
	healthHandler *health.Handler,
	corsCfg middleware.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing("shopthelook"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("shopthelook"))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Widget API endpoints
	widgetHandler := NewWidgetHandler(widgetService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/scenes", widgetHandler.ListScenes)
		r.Get("/scenes/{slug}", widgetHandler.GetScene)
		r.Get("/products/{handle}", widgetHandler.GetProduct)
		r.Post("/cart/items", widgetHandler.AddToCart)
		r.Get("/cart", widgetHandler.GetCart)
	})

	return r
}
