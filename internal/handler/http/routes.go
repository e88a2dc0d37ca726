package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// the admin API is queried from browser-side tooling on other origins
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/api/version/", h.getAppVersion)

	router.Route("/api/admin", func(r chi.Router) {
		r.Get("/activities", h.listActivities)
		r.Post("/activities", h.recordActivity)
		r.Get("/stats", h.getStats)
	})

	return router
}
