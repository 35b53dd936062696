package middleware

import (
	"net/http"
	"strings"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession validates the Bearer session token and stores the staff
// identity, role and token in the request context.
func AuthSession(sessionRepo repository.SessionRepository, staffRepo repository.StaffRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			staff, err := staffRepo.FindByID(r.Context(), session.StaffID)
			if err != nil {
				logger.Error("Failed to load session staff",
					zap.Error(err), zap.String("staff_id", session.StaffID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if staff == nil || !staff.IsActive {
				utils.ResponseUnauthorized(w, "Account is not active")
				return
			}

			ctx := utils.SetStaffContext(r.Context(), staff.ID, string(staff.Role))
			ctx = utils.SetTokenContext(ctx, token.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects requests whose authenticated staff is not an admin. It must
// run after AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			staffID, ok := utils.GetStaffIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if role != string(entity.StaffRoleAdmin) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("staff_id", staffID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// When applies the middlewares only if enabled is set. Otherwise requests
// pass straight through.
func When(enabled bool, middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
