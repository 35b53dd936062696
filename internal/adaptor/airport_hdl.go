package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AirportHandler struct {
	service usecase.AirportService
	log     *zap.Logger
}

func NewAirportHandler(service usecase.AirportService, log *zap.Logger) *AirportHandler {
	return &AirportHandler{
		service: service,
		log:     log.With(zap.String("handler", "airport")),
	}
}

func (h *AirportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	airports, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get airports")
		return
	}

	utils.ResponseSuccess(w, "success", airports)
}

// Search handles GET /api/airports/search?q=
func (h *AirportHandler) Search(w http.ResponseWriter, r *http.Request) {
	airports, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search airports")
		return
	}

	utils.ResponseSuccess(w, "success", airports)
}

func (h *AirportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	airport, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get airport")
		return
	}

	utils.ResponseSuccess(w, "success", airport)
}

func (h *AirportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create airport")
		return
	}

	utils.ResponseCreated(w, "Airport created", airport)
}

func (h *AirportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update airport")
		return
	}

	utils.ResponseSuccess(w, "Airport updated", airport)
}

func (h *AirportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete airport")
		return
	}

	utils.ResponseSuccess(w, "Airport deleted", nil)
}
