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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCrewService_Assign(t *testing.T) {
	flightID := uuid.New()
	crewID := uuid.New()

	available := &entity.CrewView{Crew: entity.Crew{Base: entity.Base{ID: crewID}, IsAvailable: true}}
	offDuty := &entity.CrewView{Crew: entity.Crew{Base: entity.Base{ID: crewID}, IsAvailable: false}}
	flight := testFlight(flightID, entity.FlightStatusScheduled)

	type repos struct {
		flights  *mocks.MockFlightRepository
		crew     *mocks.MockCrewRepository
		assigned *mocks.MockFlightCrewRepository
	}

	tests := []struct {
		name      string
		setupMock func(m repos)
		wantCode  int
	}{
		{
			name: "assigns available member",
			setupMock: func(m repos) {
				m.flights.EXPECT().FindByID(gomock.Any(), flightID).Return(flight, nil)
				m.crew.EXPECT().FindByID(gomock.Any(), crewID).Return(available, nil)
				m.assigned.EXPECT().Exists(gomock.Any(), flightID, crewID).Return(false, nil)
				m.assigned.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown flight",
			setupMock: func(m repos) {
				m.flights.EXPECT().FindByID(gomock.Any(), flightID).Return(nil, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unavailable member",
			setupMock: func(m repos) {
				m.flights.EXPECT().FindByID(gomock.Any(), flightID).Return(flight, nil)
				m.crew.EXPECT().FindByID(gomock.Any(), crewID).Return(offDuty, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "already on the flight",
			setupMock: func(m repos) {
				m.flights.EXPECT().FindByID(gomock.Any(), flightID).Return(flight, nil)
				m.crew.EXPECT().FindByID(gomock.Any(), crewID).Return(available, nil)
				m.assigned.EXPECT().Exists(gomock.Any(), flightID, crewID).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "concurrent duplicate assignment",
			setupMock: func(m repos) {
				m.flights.EXPECT().FindByID(gomock.Any(), flightID).Return(flight, nil)
				m.crew.EXPECT().FindByID(gomock.Any(), crewID).Return(available, nil)
				m.assigned.EXPECT().Exists(gomock.Any(), flightID, crewID).Return(false, nil)
				m.assigned.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: repository.FlightCrewConstraint})
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := repos{
				flights:  mocks.NewMockFlightRepository(ctrl),
				crew:     mocks.NewMockCrewRepository(ctrl),
				assigned: mocks.NewMockFlightCrewRepository(ctrl),
			}
			tt.setupMock(m)

			svc := NewCrewService(&repository.Repository{Flight: m.flights, Crew: m.crew, FlightCrew: m.assigned}, zap.NewNop())
			resp, err := svc.Assign(context.Background(), &request.AssignCrewRequest{
				FlightID:     flightID.String(),
				CrewID:       crewID.String(),
				RoleOnFlight: "captain",
			})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, flightID.String(), resp.FlightID)
			assert.Equal(t, crewID.String(), resp.CrewID)
			assert.Equal(t, "captain", resp.RoleOnFlight)
		})
	}
}

func TestCrewService_CreateDefaultsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	crew := mocks.NewMockCrewRepository(ctrl)
	svc := NewCrewService(&repository.Repository{Crew: crew}, zap.NewNop())

	var stored *entity.Crew
	crew.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *entity.Crew) error {
			stored = c
			return nil
		})
	crew.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*entity.CrewView, error) {
			return &entity.CrewView{Crew: *stored}, nil
		})

	resp, err := svc.Create(context.Background(), &request.CreateCrewRequest{
		FirstName:  "Amelia",
		LastName:   "Putri",
		Role:       "purser",
		EmployeeID: "EMP-0042",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Nil(t, resp.AirlineID)
	assert.Equal(t, entity.CrewRolePurser, resp.Role)
}

func TestCrewService_Unassign(t *testing.T) {
	ctrl := gomock.NewController(t)
	assigned := mocks.NewMockFlightCrewRepository(ctrl)
	svc := NewCrewService(&repository.Repository{FlightCrew: assigned}, zap.NewNop())
	id := uuid.New()

	assigned.EXPECT().Delete(gomock.Any(), id).Return(repository.ErrNotFound)

	err := svc.Unassign(context.Background(), id.String())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
