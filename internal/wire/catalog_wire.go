package wire

import (
	"airline-backoffice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAirline(r chi.Router, h *adaptor.AirlineHandler, g guards) {
	r.Route("/airlines", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)

		r.With(g.staff).Post("/", h.Create)
		r.With(g.staff).Put("/{id}", h.Update)
		r.With(g.staff).Patch("/{id}/toggle", h.ToggleActive)
		r.With(g.admin).Delete("/{id}", h.Delete)
	})
}

func wireAirport(r chi.Router, h *adaptor.AirportHandler, g guards) {
	r.Route("/airports", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/search", h.Search)
		r.Get("/{id}", h.GetByID)

		r.With(g.staff).Post("/", h.Create)
		r.With(g.staff).Put("/{id}", h.Update)
		r.With(g.admin).Delete("/{id}", h.Delete)
	})
}

func wireAircraft(r chi.Router, h *adaptor.AircraftHandler, g guards) {
	r.Route("/aircraft", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/airline/{id}", h.GetByAirline)
		r.Get("/{id}", h.GetByID)

		r.With(g.staff).Post("/", h.Create)
		r.With(g.staff).Put("/{id}", h.Update)
		r.With(g.staff).Patch("/{id}/status", h.UpdateStatus)
		r.With(g.admin).Delete("/{id}", h.Delete)
	})
}
