package wire

import (
	"airline-backoffice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, h *adaptor.FlightHandler, g guards) {
	r.Route("/flights", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/search", h.Search)
		r.Get("/stats", h.Stats)
		r.Get("/{id}", h.GetByID)
		r.Get("/{id}/seats", h.GetSeatMap)

		r.With(g.staff).Post("/", h.Create)
		r.With(g.staff).Put("/{id}", h.Update)
		r.With(g.staff).Patch("/{id}/status", h.UpdateStatus)
		r.With(g.admin).Delete("/{id}", h.Delete)
	})
}
