package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Staff     StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	FullName  string           `json:"full_name"`
	Role      entity.StaffRole `json:"role"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}

func StaffToResponse(staff *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:        staff.ID.String(),
		Username:  staff.Username,
		FullName:  staff.FullName,
		Role:      staff.Role,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt,
	}
}

func LoginToResponse(staff *entity.Staff, session *entity.Session) LoginResponse {
	return LoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
		Staff:     StaffToResponse(staff),
	}
}
