package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dexpay/treasuryd/internal/adapter/http/handler"
	"github.com/dexpay/treasuryd/internal/adapter/http/middleware"
	"github.com/dexpay/treasuryd/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	ReportHandler      *handler.ReportHandler
	AuditHandler       *handler.AuditHandler
	HealthHandler      *handler.HealthHandler
	SessionVerifier    middleware.SessionVerifier
	IdempotencyStore   usecase.IdempotencyStore
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router. Everything under /api/v1 except the
// PIN endpoint requires a live session; each authenticated request slides the
// session's inactivity TTL.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/pin", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			if cfg.SessionVerifier != nil {
				r.Use(middleware.Session(cfg.SessionVerifier))
			}
			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
			}

			r.Post("/auth/logout", cfg.AuthHandler.Logout)

			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", cfg.AccountHandler.List)
				r.Put("/{id}/balance", cfg.AccountHandler.SetBalance)
				r.Put("/{id}/fiat", cfg.AccountHandler.SetFiat)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", cfg.TransactionHandler.List)
				r.Post("/", cfg.TransactionHandler.Create)
				r.Patch("/{id}/status", cfg.TransactionHandler.UpdateStatus)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/metrics", cfg.ReportHandler.Metrics)
				r.Get("/runway", cfg.ReportHandler.Runway)
			})

			r.Get("/audit", cfg.AuditHandler.List)
		})
	})

	return r
}
