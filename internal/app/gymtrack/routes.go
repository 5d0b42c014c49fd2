// Package gymtrack предоставляет маршруты приложения.
package gymtrack

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gymtrack/gymtrack/internal/http/handlers/member/assignplan"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/catalog"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/create"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/list"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/read"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/remove"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/stats"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/status"
	"github.com/gymtrack/gymtrack/internal/http/handlers/member/update"
	"github.com/gymtrack/gymtrack/internal/http/middlewarectx"
	memberservice "github.com/gymtrack/gymtrack/internal/services/member"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *memberservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Get("/plans", catalog.New(logger).ServeHTTP)

		r.Post("/members", create.New(logger, service).ServeHTTP)
		r.Get("/members", list.New(logger, service).ServeHTTP)
		r.Get("/members/stats", stats.New(logger, service).ServeHTTP)
		r.Get("/members/{id}", read.New(logger, service).ServeHTTP)
		r.Put("/members/{id}", update.New(logger, service).ServeHTTP)
		r.Delete("/members/{id}", remove.New(logger, service).ServeHTTP)
		r.Put("/members/{id}/status", status.New(logger, service).ServeHTTP)
		r.Post("/members/{id}/plan", assignplan.New(logger, service).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
