package wire

import (
	"airline-backoffice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCrew(r chi.Router, h *adaptor.CrewHandler, g guards) {
	r.Route("/crew", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/available", h.GetAvailable)
		r.Get("/flight/{id}", h.GetByFlight)
		r.Get("/{id}", h.GetByID)

		r.With(g.staff).Post("/", h.Create)
		r.With(g.staff).Put("/{id}", h.Update)
		r.With(g.admin).Delete("/{id}", h.Delete)

		r.With(g.staff).Post("/assign", h.Assign)
		r.With(g.staff).Delete("/assign/{id}", h.Unassign)
	})
}
