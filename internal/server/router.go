package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ece-devops/userapi/internal/handler"
	"github.com/ece-devops/userapi/internal/middleware"
)

// RouterConfig carries the handlers and settings the router is built from.
type RouterConfig struct {
	Handler *handler.Handler
	Health  *handler.HealthHandler
	Users   *handler.UserHandler
	Docs    *handler.DocsHandler
	Metrics *handler.MetricsHandler

	Logger             *slog.Logger
	IsDevelopment      bool
	MaxRequestBodySize int64
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))

	// Probes and greeting
	r.Get("/", cfg.Handler.Hello)
	r.Get("/healthz", cfg.Health.Healthz)
	r.Get("/readyz", cfg.Health.Readyz)
	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Metrics)
	}

	// Documentation
	if cfg.Docs != nil {
		r.Get("/api-docs", cfg.Docs.UI)
		r.Get("/api-docs/openapi.json", cfg.Docs.Spec)
		r.Get("/api-docs/openapi.yaml", cfg.Docs.SpecYAML)
	}

	// User records
	r.Route("/user", func(r chi.Router) {
		r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
		r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

		r.Post("/", cfg.Users.Create)
		r.Get("/{username}", cfg.Users.Get)
	})

	r.NotFound(cfg.Handler.NotFound)
	r.MethodNotAllowed(cfg.Handler.MethodNotAllowed)

	return r
}
