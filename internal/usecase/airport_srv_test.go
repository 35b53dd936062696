package usecase

import (
	"context"
	"net/http"
	"testing"
	_ "time/tzdata"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository/mocks"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAirportService_SearchEmptyTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAirportService(mocks.NewMockAirportRepository(ctrl), zap.NewNop())

	results, err := svc.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAirportService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       request.CreateAirportRequest
		setupMock func(repo *mocks.MockAirportRepository)
		wantCode  string
		wantErr   int
	}{
		{
			name: "code is stored upper-case",
			req:  request.CreateAirportRequest{Name: "Soekarno-Hatta", Code: "cgk", City: "Jakarta", Country: "Indonesia", Timezone: "Asia/Jakarta"},
			setupMock: func(repo *mocks.MockAirportRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *entity.Airport) error {
						assert.Equal(t, "CGK", a.Code)
						assert.Equal(t, "Asia/Jakarta", a.Timezone)
						return nil
					})
			},
			wantCode: "CGK",
		},
		{
			name:    "code must be three characters",
			req:     request.CreateAirportRequest{Name: "Soekarno-Hatta", Code: "CG", City: "Jakarta", Country: "Indonesia", Timezone: "Asia/Jakarta"},
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "code must be alphanumeric",
			req:     request.CreateAirportRequest{Name: "Soekarno-Hatta", Code: "C-K", City: "Jakarta", Country: "Indonesia", Timezone: "Asia/Jakarta"},
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "unknown timezone",
			req:     request.CreateAirportRequest{Name: "Soekarno-Hatta", Code: "CGK", City: "Jakarta", Country: "Indonesia", Timezone: "Mars/Olympus"},
			wantErr: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAirportRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			svc := NewAirportService(repo, zap.NewNop())

			resp, err := svc.Create(context.Background(), &tt.req)

			if tt.wantErr != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestAirportService_Update(t *testing.T) {
	id := uuid.New()
	current := func() *entity.Airport {
		return &entity.Airport{
			Base:     entity.Base{ID: id},
			Name:     "Ngurah Rai",
			Code:     "DPS",
			City:     "Denpasar",
			Country:  "Indonesia",
			Timezone: "Asia/Makassar",
		}
	}
	str := func(s string) *string { return &s }

	tests := []struct {
		name      string
		req       request.UpdateAirportRequest
		setupMock func(repo *mocks.MockAirportRepository)
		want      *entity.Airport
		wantErr   int
	}{
		{
			name: "merges fields and upper-cases code",
			req:  request.UpdateAirportRequest{Code: str("dps"), Timezone: str("Asia/Jakarta")},
			setupMock: func(repo *mocks.MockAirportRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(current(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &entity.Airport{Name: "Ngurah Rai", Code: "DPS", City: "Denpasar", Timezone: "Asia/Jakarta"},
		},
		{
			name:    "bad code",
			req:     request.UpdateAirportRequest{Code: str("DENP")},
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "bad timezone",
			req:     request.UpdateAirportRequest{Timezone: str("Bali/Kuta")},
			wantErr: http.StatusBadRequest,
		},
		{
			name: "missing airport",
			req:  request.UpdateAirportRequest{City: str("Badung")},
			setupMock: func(repo *mocks.MockAirportRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			wantErr: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAirportRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			svc := NewAirportService(repo, zap.NewNop())

			resp, err := svc.Update(context.Background(), id.String(), &tt.req)

			if tt.wantErr != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, resp.Name)
			assert.Equal(t, tt.want.Code, resp.Code)
			assert.Equal(t, tt.want.City, resp.City)
			assert.Equal(t, tt.want.Timezone, resp.Timezone)
		})
	}
}
