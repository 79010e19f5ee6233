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
	router.Use(middleware.Compress(5))

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/awareness", h.awareness)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/logout", h.logout)
		r.Get("/dashboard", h.dashboard)
		r.Get("/health", h.healthForm)
		r.Post("/health", h.submitReading)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.adminOnly)

		r.Get("/admin/summary", h.adminSummary)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
