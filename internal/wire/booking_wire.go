package wire

import (
	"airline-backoffice/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, h *adaptor.BookingHandler, g guards) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/stats", h.Stats)
		r.Get("/flight/{id}", h.GetByFlight)
		r.Get("/passenger/{id}", h.GetByPassenger)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(g.staff)

			r.Post("/", h.Create)
			r.Patch("/{id}/status", h.UpdateStatus)
			r.Patch("/{id}/payment", h.MarkPaid)
		})
	})
}
