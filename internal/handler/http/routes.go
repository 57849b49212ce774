package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the authority API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Route("/api/games", func(r chi.Router) {
			r.Get("/", h.listOwnGames)
			r.Post("/", h.createGame)
			r.Get("/shared", h.listSharedGames)
			r.Post("/batch", h.fetchGamesByIDs)
			r.Get("/share/{token}", h.joinGame)
			r.Put("/{id}", h.persistGame)
			r.Delete("/{id}", h.deleteGame)
			r.Post("/{id}/share", h.shareGame)
		})

		r.Get("/api/realtime/games/{id}", h.watchGame)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
