package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/data/repository/mocks"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/pkg/failure"
	"airline-backoffice/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T, cfg *utils.Config) (AuthService, *mocks.MockStaffRepository, *mocks.MockSessionRepository) {
	ctrl := gomock.NewController(t)
	staff := mocks.NewMockStaffRepository(ctrl)
	sessions := mocks.NewMockSessionRepository(ctrl)

	repo := &repository.Repository{Staff: staff, Session: sessions}
	return NewAuthService(repo, cfg, zap.NewNop()), staff, sessions
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	active := &entity.Staff{Base: entity.Base{ID: uuid.New()}, Username: "ops", PasswordHash: hash, Role: entity.StaffRoleAgent, IsActive: true}
	disabled := *active
	disabled.IsActive = false

	tests := []struct {
		name      string
		password  string
		found     *entity.Staff
		wantCode  int
		wantLogin bool
	}{
		{name: "valid credentials", password: "s3cret-pass", found: active, wantLogin: true},
		{name: "wrong password", password: "nope", found: active, wantCode: http.StatusUnauthorized},
		{name: "unknown user", password: "s3cret-pass", found: nil, wantCode: http.StatusUnauthorized},
		{name: "deactivated", password: "s3cret-pass", found: &disabled, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &utils.Config{Auth: utils.AuthConfig{SessionExpiryHours: 8}}
			svc, staff, sessions := newTestAuthService(t, cfg)

			staff.EXPECT().FindByUsername(gomock.Any(), "ops").Return(tt.found, nil)
			if tt.wantLogin {
				sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *entity.Session) error {
						assert.Equal(t, active.ID, s.StaffID)
						require.NotNil(t, s.UserAgent)
						assert.Equal(t, "curl/8.0", *s.UserAgent)
						assert.WithinDuration(t, time.Now().Add(8*time.Hour), s.ExpiresAt, time.Minute)
						return nil
					})
			}

			resp, err := svc.Login(context.Background(), &request.LoginRequest{Username: "ops", Password: tt.password},
				ClientInfo{UserAgent: "curl/8.0", IPAddress: "10.0.0.7"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "ops", resp.Staff.Username)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newTestAuthService(t, &utils.Config{})
	token := uuid.New()

	sessions.EXPECT().Revoke(gomock.Any(), token).Return(nil)
	require.NoError(t, svc.Logout(context.Background(), token.String()))

	err := svc.Logout(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	cfg := &utils.Config{Auth: utils.AuthConfig{AdminUsername: "admin", AdminPassword: "change-me-now"}}

	t.Run("creates admin on empty table", func(t *testing.T) {
		svc, staff, _ := newTestAuthService(t, cfg)

		staff.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil)
		staff.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *entity.Staff) error {
				assert.Equal(t, "admin", s.Username)
				assert.Equal(t, entity.StaffRoleAdmin, s.Role)
				assert.True(t, utils.CheckPasswordHash("change-me-now", s.PasswordHash))
				return nil
			})

		require.NoError(t, svc.EnsureAdmin(context.Background()))
	})

	t.Run("skips when staff exists", func(t *testing.T) {
		svc, staff, _ := newTestAuthService(t, cfg)
		staff.EXPECT().CountAll(gomock.Any()).Return(int64(2), nil)

		require.NoError(t, svc.EnsureAdmin(context.Background()))
	})

	t.Run("skips without credentials", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t, &utils.Config{})

		require.NoError(t, svc.EnsureAdmin(context.Background()))
	})
}
