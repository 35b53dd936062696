package adaptor

import (
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CrewHandler struct {
	service usecase.CrewService
	log     *zap.Logger
}

func NewCrewHandler(service usecase.CrewService, log *zap.Logger) *CrewHandler {
	return &CrewHandler{
		service: service,
		log:     log.With(zap.String("handler", "crew")),
	}
}

func (h *CrewHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get crew")
		return
	}

	utils.ResponseSuccess(w, "success", members)
}

func (h *CrewHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.GetAvailable(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get available crew")
		return
	}

	utils.ResponseSuccess(w, "success", members)
}

// GetByFlight handles GET /api/crew/flight/{id}
func (h *CrewHandler) GetByFlight(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.service.GetByFlight(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get flight crew")
		return
	}

	utils.ResponseSuccess(w, "success", assignments)
}

func (h *CrewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get crew member")
		return
	}

	utils.ResponseSuccess(w, "success", member)
}

func (h *CrewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create crew member")
		return
	}

	utils.ResponseCreated(w, "Crew member created", member)
}

func (h *CrewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update crew member")
		return
	}

	utils.ResponseSuccess(w, "Crew member updated", member)
}

func (h *CrewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete crew member")
		return
	}

	utils.ResponseSuccess(w, "Crew member deleted", nil)
}

// Assign handles POST /api/crew/assign
func (h *CrewHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req request.AssignCrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	assignment, err := h.service.Assign(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "assign crew")
		return
	}

	utils.ResponseCreated(w, "Crew assigned", assignment)
}

// Unassign handles DELETE /api/crew/assign/{id}
func (h *CrewHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unassign(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "unassign crew")
		return
	}

	utils.ResponseSuccess(w, "Crew unassigned", nil)
}
