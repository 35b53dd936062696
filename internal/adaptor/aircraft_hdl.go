package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AircraftHandler struct {
	service usecase.AircraftService
	log     *zap.Logger
}

func NewAircraftHandler(service usecase.AircraftService, log *zap.Logger) *AircraftHandler {
	return &AircraftHandler{
		service: service,
		log:     log.With(zap.String("handler", "aircraft")),
	}
}

func (h *AircraftHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	fleet, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get aircraft")
		return
	}

	utils.ResponseSuccess(w, "success", fleet)
}

// GetByAirline handles GET /api/aircraft/airline/{id}
func (h *AircraftHandler) GetByAirline(w http.ResponseWriter, r *http.Request) {
	fleet, err := h.service.GetByAirline(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get airline fleet")
		return
	}

	utils.ResponseSuccess(w, "success", fleet)
}

func (h *AircraftHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get aircraft")
		return
	}

	utils.ResponseSuccess(w, "success", aircraft)
}

func (h *AircraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAircraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	aircraft, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create aircraft")
		return
	}

	utils.ResponseCreated(w, "Aircraft created", aircraft)
}

func (h *AircraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAircraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	aircraft, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update aircraft")
		return
	}

	utils.ResponseSuccess(w, "Aircraft updated", aircraft)
}

// UpdateStatus handles PATCH /api/aircraft/{id}/status
func (h *AircraftHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAircraftStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	aircraft, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update aircraft status")
		return
	}

	utils.ResponseSuccess(w, "Aircraft status updated", aircraft)
}

func (h *AircraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete aircraft")
		return
	}

	utils.ResponseSuccess(w, "Aircraft deleted", nil)
}
