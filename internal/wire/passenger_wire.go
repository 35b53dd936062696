package wire

import (
	"airline-backoffice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePassenger(r chi.Router, h *adaptor.PassengerHandler, g guards) {
	r.Route("/passengers", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/search", h.Search)
		r.Get("/{id}", h.GetByID)

		r.With(g.staff).Post("/", h.Create)
		r.With(g.staff).Put("/{id}", h.Update)
		r.With(g.admin).Delete("/{id}", h.Delete)
	})
}
