package usecase

import (
	"context"
	"net/http"
	"testing"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/data/repository/mocks"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestApplySeatLayout(t *testing.T) {
	tests := []struct {
		name      string
		aircraft  entity.Aircraft
		wantTotal int
		wantErr   string
	}{
		{name: "sums classes", aircraft: entity.Aircraft{EconomySeats: 150, BusinessSeats: 20, FirstClassSeats: 8}, wantTotal: 178},
		{name: "single class", aircraft: entity.Aircraft{EconomySeats: 72}, wantTotal: 72},
		{name: "no seats", aircraft: entity.Aircraft{}, wantErr: "aircraft must have at least one seat"},
		{name: "negative", aircraft: entity.Aircraft{EconomySeats: 10, BusinessSeats: -2}, wantErr: "seat counts must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.aircraft
			err := applySeatLayout(&a)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, a.TotalSeats)
		})
	}
}

func TestAircraftService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAircraftRepository(ctrl)
	svc := NewAircraftService(repo, zap.NewNop())

	var stored *entity.Aircraft
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *entity.Aircraft) error {
			stored = a
			return nil
		})
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*entity.AircraftView, error) {
			return &entity.AircraftView{Aircraft: *stored, AirlineCode: "GA"}, nil
		})

	resp, err := svc.Create(context.Background(), &request.CreateAircraftRequest{
		AirlineID:     uuid.NewString(),
		Model:         "Airbus A320",
		Registration:  "pk-gla",
		EconomySeats:  150,
		BusinessSeats: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, "PK-GLA", stored.Registration)
	assert.Equal(t, 162, stored.TotalSeats)
	assert.Equal(t, entity.AircraftStatusActive, stored.Status)
	assert.Equal(t, 162, resp.TotalSeats)
}

func TestAircraftService_UpdateStatusMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAircraftRepository(ctrl)
	svc := NewAircraftService(repo, zap.NewNop())
	id := uuid.New()

	repo.EXPECT().UpdateStatus(gomock.Any(), id, entity.AircraftStatusMaintenance).Return(repository.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), id.String(), &request.UpdateAircraftStatusRequest{Status: "maintenance"})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAircraftService_Update(t *testing.T) {
	id := uuid.New()
	current := func() *entity.AircraftView {
		return &entity.AircraftView{Aircraft: entity.Aircraft{
			Base:            entity.Base{ID: id},
			AirlineID:       uuid.New(),
			Model:           "Boeing 737-800",
			Registration:    "PK-GFA",
			TotalSeats:      178,
			EconomySeats:    150,
			BusinessSeats:   20,
			FirstClassSeats: 8,
			Status:          entity.AircraftStatusActive,
		}}
	}
	seats := func(n int) *int { return &n }
	model := "Boeing 737 MAX 8"

	tests := []struct {
		name      string
		req       request.UpdateAircraftRequest
		setupMock func(repo *mocks.MockAircraftRepository)
		wantTotal int
		wantErr   int
	}{
		{
			name: "total follows merged counts",
			req:  request.UpdateAircraftRequest{BusinessSeats: seats(0), FirstClassSeats: seats(12)},
			setupMock: func(repo *mocks.MockAircraftRepository) {
				var stored entity.Aircraft
				gomock.InOrder(
					repo.EXPECT().FindByID(gomock.Any(), id).Return(current(), nil),
					repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, a *entity.Aircraft) error {
							assert.Equal(t, 150, a.EconomySeats)
							assert.Equal(t, 0, a.BusinessSeats)
							assert.Equal(t, 12, a.FirstClassSeats)
							stored = *a
							return nil
						}),
					repo.EXPECT().FindByID(gomock.Any(), id).DoAndReturn(
						func(_ context.Context, _ uuid.UUID) (*entity.AircraftView, error) {
							return &entity.AircraftView{Aircraft: stored}, nil
						}),
				)
			},
			wantTotal: 162,
		},
		{
			name: "untouched counts keep the total",
			req:  request.UpdateAircraftRequest{Model: &model},
			setupMock: func(repo *mocks.MockAircraftRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(current(), nil).Times(2)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *entity.Aircraft) error {
						assert.Equal(t, "Boeing 737 MAX 8", a.Model)
						assert.Equal(t, 178, a.TotalSeats)
						return nil
					})
			},
			wantTotal: 178,
		},
		{
			name: "cannot remove every seat",
			req:  request.UpdateAircraftRequest{EconomySeats: seats(0), BusinessSeats: seats(0), FirstClassSeats: seats(0)},
			setupMock: func(repo *mocks.MockAircraftRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(current(), nil)
			},
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "negative count",
			req:     request.UpdateAircraftRequest{EconomySeats: seats(-1)},
			wantErr: http.StatusBadRequest,
		},
		{
			name: "missing aircraft",
			req:  request.UpdateAircraftRequest{EconomySeats: seats(100)},
			setupMock: func(repo *mocks.MockAircraftRepository) {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			wantErr: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAircraftRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			svc := NewAircraftService(repo, zap.NewNop())

			resp, err := svc.Update(context.Background(), id.String(), &tt.req)

			if tt.wantErr != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, resp.TotalSeats)
		})
	}
}
