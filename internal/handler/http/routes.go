package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)

		r.Post("/api/documents", h.upload)
		r.Get("/api/documents", h.listDocuments)
		r.Get("/api/documents/{docid}", h.preview)
		r.Get("/api/documents/{docid}/download", h.download)

		r.Get("/api/search", h.search)
		r.Get("/api/logs", h.accessLogs)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
