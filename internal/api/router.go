package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/neexbeast/amadeus/internal/observability"
)

// RouterConfig carries the boundary settings of the router.
type RouterConfig struct {
	// Backend names the selected data source, reported by the health check.
	Backend            string
	CORSOrigins        []string
	RateLimitPerMinute int
}

// NewRouter builds and returns the Chi router with all routes configured under /api/v1.
// Rate limiting is applied per IP to the API routes; /metrics is not limited.
func NewRouter(handlers *Handlers, cfg RouterConfig, db dbPinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(observability.Middleware)
	r.Use(CORS(cfg.CORSOrigins))

	r.Handle("/metrics", observability.MetricsHandler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitPerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
		}

		r.Get("/health", HealthHandlerFunc(cfg.Backend, db, log))

		r.Get("/regions", handlers.ListRegions)
		r.Get("/region/search", handlers.SearchRegion)
		r.Get("/region/{id}", handlers.GetRegion)
		r.Post("/region", handlers.CreateRegion)
		r.Patch("/region/{id}", handlers.UpdateRegion)
		r.Delete("/region/{id}", handlers.DeleteRegion)

		r.Get("/weather/forecast/{regionName}", handlers.GetForecast)
		r.Get("/weather/history/{regionName}", handlers.GetHistory)
		r.Get("/weather/{regionName}", handlers.GetWeather)
		r.Post("/weather", handlers.RecordReading)
		r.Post("/weather/forecast", handlers.RecordForecast)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
