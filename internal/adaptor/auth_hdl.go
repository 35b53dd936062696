package adaptor

import (
	"net"
	"net/http"

	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/usecase"
	"airline-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	response, err := h.service.Login(r.Context(), &req, usecase.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: ip,
	})
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	staffID, ok := utils.GetStaffIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	staff, err := h.service.Me(r.Context(), staffID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// ListStaff handles GET /api/admin/staff
func (h *AuthHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListStaff(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// CreateStaff handles POST /api/admin/staff
func (h *AuthHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStaffRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "Staff account created", staff)
}
