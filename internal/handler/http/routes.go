package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init wires the full route table.
//
// /health lives outside the versioned prefix so that load balancers keep a
// stable probe path across API versions. Item reads are public; everything
// else behind /api/v1 requires a bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if len(h.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	router.Get("/health", h.health)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
			r.With(h.auth).Post("/test-token", h.testToken)
		})

		api.Route("/users", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listUsers)
			r.Get("/me", h.me)
			r.Put("/me", h.updateMe)
			r.Get("/{id}", h.getUser)
			r.Delete("/{id}", h.deleteUser)
		})

		api.Route("/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Get("/{id}", h.getItem)
			r.With(h.auth).Post("/", h.createItem)
			r.With(h.auth).Get("/my-items", h.myItems)
			r.With(h.auth).Put("/{id}", h.updateItem)
			r.With(h.auth).Delete("/{id}", h.deleteItem)
		})
	})

	return router
}
