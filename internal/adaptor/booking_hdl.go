package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetAll handles GET /api/bookings?page=1&per_page=10
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "booking stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetByFlight handles GET /api/bookings/flight/{id}
func (h *BookingHandler) GetByFlight(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetByFlight(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get flight bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetByPassenger handles GET /api/bookings/passenger/{id}
func (h *BookingHandler) GetByPassenger(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetByPassenger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get passenger bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// UpdateStatus handles PATCH /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

// MarkPaid handles PATCH /api/bookings/{id}/payment
func (h *BookingHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "mark booking paid")
		return
	}

	utils.ResponseSuccess(w, "Payment recorded", booking)
}
