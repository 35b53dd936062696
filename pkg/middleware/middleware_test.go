package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository/mocks"
	"airline-backoffice/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(t *testing.T, check func(ctx context.Context)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r.Context())
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthSession(t *testing.T) {
	token := uuid.New()
	staffID := uuid.New()
	agent := &entity.Staff{Base: entity.Base{ID: staffID}, Role: entity.StaffRoleAgent, IsActive: true}
	session := &entity.Session{StaffID: staffID, Token: token, ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name      string
		header    string
		setupMock func(sessions *mocks.MockSessionRepository, staff *mocks.MockStaffRepository)
		wantCode  int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "malformed token", header: "Bearer not-a-uuid", wantCode: http.StatusUnauthorized},
		{
			name:   "expired session",
			header: "Bearer " + token.String(),
			setupMock: func(sessions *mocks.MockSessionRepository, staff *mocks.MockStaffRepository) {
				sessions.EXPECT().FindValidSession(gomock.Any(), token).Return(nil, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "lookup failure",
			header: "Bearer " + token.String(),
			setupMock: func(sessions *mocks.MockSessionRepository, staff *mocks.MockStaffRepository) {
				sessions.EXPECT().FindValidSession(gomock.Any(), token).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "valid session",
			header: "Bearer " + token.String(),
			setupMock: func(sessions *mocks.MockSessionRepository, staff *mocks.MockStaffRepository) {
				sessions.EXPECT().FindValidSession(gomock.Any(), token).Return(session, nil)
				staff.EXPECT().FindByID(gomock.Any(), staffID).Return(agent, nil)
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := mocks.NewMockSessionRepository(ctrl)
			staff := mocks.NewMockStaffRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(sessions, staff)
			}

			handler := AuthSession(sessions, staff, zap.NewNop())(okHandler(t, func(ctx context.Context) {
				id, ok := utils.GetStaffIDFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, staffID, id)
				role, _ := utils.GetRoleFromContext(ctx)
				assert.Equal(t, "agent", role)
				tok, _ := utils.GetTokenFromContext(ctx)
				assert.Equal(t, token.String(), tok)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/flights", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAdmin(t *testing.T) {
	handler := Admin(zap.NewNop())(okHandler(t, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		wantCode int
	}{
		{name: "anonymous", ctx: context.Background(), wantCode: http.StatusUnauthorized},
		{name: "agent", ctx: utils.SetStaffContext(context.Background(), uuid.New(), "agent"), wantCode: http.StatusForbidden},
		{name: "admin", ctx: utils.SetStaffContext(context.Background(), uuid.New(), "admin"), wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/airlines/x", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestWhen(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	rec := httptest.NewRecorder()
	When(false, deny)(okHandler(t, nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	When(true, deny)(okHandler(t, nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := Recover(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "PANIC recovered", logs.All()[0].Message)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, int64(7), fields["bytes"])
	assert.Equal(t, "/api/bookings/abc", fields["path"])
}

func TestCORS(t *testing.T) {
	handler := CORS([]string{"http://localhost:3000"})(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodOptions, "/api/flights", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/flights", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
