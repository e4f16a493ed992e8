package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withRateLimit(h.limiter), withGZip)

	router.Get("/api/health", h.health)
	router.Get("/api/statistics/{kind}", h.getStatistics)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
