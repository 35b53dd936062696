package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PassengerHandler struct {
	service usecase.PassengerService
	log     *zap.Logger
}

func NewPassengerHandler(service usecase.PassengerService, log *zap.Logger) *PassengerHandler {
	return &PassengerHandler{
		service: service,
		log:     log.With(zap.String("handler", "passenger")),
	}
}

// GetAll handles GET /api/passengers?page=1&per_page=10
func (h *PassengerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	passengers, err := h.service.GetAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get passengers")
		return
	}

	utils.ResponseSuccess(w, "success", passengers)
}

// Search handles GET /api/passengers/search?q=
func (h *PassengerHandler) Search(w http.ResponseWriter, r *http.Request) {
	passengers, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search passengers")
		return
	}

	utils.ResponseSuccess(w, "success", passengers)
}

func (h *PassengerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	passenger, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get passenger")
		return
	}

	utils.ResponseSuccess(w, "success", passenger)
}

func (h *PassengerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePassengerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	passenger, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create passenger")
		return
	}

	utils.ResponseCreated(w, "Passenger created", passenger)
}

func (h *PassengerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePassengerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	passenger, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update passenger")
		return
	}

	utils.ResponseSuccess(w, "Passenger updated", passenger)
}

func (h *PassengerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete passenger")
		return
	}

	utils.ResponseSuccess(w, "Passenger deleted", nil)
}
