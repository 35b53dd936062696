package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AirlineHandler struct {
	service usecase.AirlineService
	log     *zap.Logger
}

func NewAirlineHandler(service usecase.AirlineService, log *zap.Logger) *AirlineHandler {
	return &AirlineHandler{
		service: service,
		log:     log.With(zap.String("handler", "airline")),
	}
}

// GetAll handles GET /api/airlines
func (h *AirlineHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get airlines")
		return
	}

	utils.ResponseSuccess(w, "success", airlines)
}

// GetByID handles GET /api/airlines/{id}
func (h *AirlineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	airline, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get airline")
		return
	}

	utils.ResponseSuccess(w, "success", airline)
}

// Create handles POST /api/airlines
func (h *AirlineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAirlineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airline, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create airline")
		return
	}

	utils.ResponseCreated(w, "Airline created", airline)
}

// Update handles PUT /api/airlines/{id}
func (h *AirlineHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAirlineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airline, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update airline")
		return
	}

	utils.ResponseSuccess(w, "Airline updated", airline)
}

// ToggleActive handles PATCH /api/airlines/{id}/toggle
func (h *AirlineHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	airline, err := h.service.ToggleActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "toggle airline")
		return
	}

	utils.ResponseSuccess(w, "Airline status updated", airline)
}

// Delete handles DELETE /api/airlines/{id}
func (h *AirlineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete airline")
		return
	}

	utils.ResponseSuccess(w, "Airline deleted", nil)
}
