package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	StaffIDKey contextKey = "staff_id"
	RoleKey    contextKey = "role"
	TokenKey   contextKey = "token"
)

func GetStaffIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	staffID, ok := ctx.Value(StaffIDKey).(uuid.UUID)
	if !ok || staffID == uuid.Nil {
		return uuid.Nil, false
	}
	return staffID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

func SetStaffContext(ctx context.Context, staffID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, StaffIDKey, staffID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetTokenFromContext returns the session token set by the auth middleware
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
