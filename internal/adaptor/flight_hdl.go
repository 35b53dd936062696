package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetAll handles GET /api/flights?page=1&per_page=10
func (h *FlightHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.GetAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// Search handles GET /api/flights/search?origin=&destination=&date=&seat_class=
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.FlightSearchRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
		Date:        query.Get("date"),
		SeatClass:   query.Get("seat_class"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flights, err := h.service.Search(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

func (h *FlightHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "flight stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

func (h *FlightHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	flight, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// GetSeatMap handles GET /api/flights/{id}/seats
func (h *FlightHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap, err := h.service.GetSeatMap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "Flight created", flight)
}

func (h *FlightHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateFlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "Flight updated", flight)
}

// UpdateStatus handles PATCH /api/flights/{id}/status
func (h *FlightHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateFlightStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update flight status")
		return
	}

	utils.ResponseSuccess(w, "Flight status updated", flight)
}

func (h *FlightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete flight")
		return
	}

	utils.ResponseSuccess(w, "Flight deleted", nil)
}
