package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.health)
		r.Get("/version", h.getServerVersion)
		if h.metrics != nil && h.cfg.IsMetricsEnabled() {
			r.Method("GET", "/metrics", h.metrics.Handler())
		}
	})

	// relay routes, guarded when a sign key is configured
	router.Group(func(r chi.Router) {
		if h.cfg.IsAuthEnabled() {
			r.Use(h.auth)
		}
		r.Post("/search", h.search)
		r.Post("/file-details", h.fileDetails)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
