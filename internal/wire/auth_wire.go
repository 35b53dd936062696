package wire

import (
	"net/http"

	"airline-backoffice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth always requires a session, whether or not write routes are guarded.
func wireAuth(r chi.Router, h *adaptor.AuthHandler, authenticate, admin func(http.Handler) http.Handler) {
	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.Me)

		r.With(admin).Route("/admin/staff", func(r chi.Router) {
			r.Get("/", h.ListStaff)
			r.Post("/", h.CreateStaff)
		})
	})
}
