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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestPassengerService(t *testing.T) (PassengerService, *mocks.MockPassengerRepository, *mocks.MockBookingRepository) {
	ctrl := gomock.NewController(t)
	passengers := mocks.NewMockPassengerRepository(ctrl)
	bookings := mocks.NewMockBookingRepository(ctrl)

	repo := &repository.Repository{Passenger: passengers, Booking: bookings}
	return NewPassengerService(repo, zap.NewNop()), passengers, bookings
}

func TestPassengerService_Delete(t *testing.T) {
	id := uuid.New()
	existing := &entity.Passenger{Base: entity.Base{ID: id}, FirstName: "Rina"}

	tests := []struct {
		name      string
		setupMock func(passengers *mocks.MockPassengerRepository, bookings *mocks.MockBookingRepository)
		wantCode  int
	}{
		{
			name: "no active bookings",
			setupMock: func(passengers *mocks.MockPassengerRepository, bookings *mocks.MockBookingRepository) {
				passengers.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
				bookings.EXPECT().CountActiveByPassenger(gomock.Any(), id).Return(0, nil)
				passengers.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
		},
		{
			name: "active bookings block delete",
			setupMock: func(passengers *mocks.MockPassengerRepository, bookings *mocks.MockBookingRepository) {
				passengers.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
				bookings.EXPECT().CountActiveByPassenger(gomock.Any(), id).Return(2, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown passenger",
			setupMock: func(passengers *mocks.MockPassengerRepository, bookings *mocks.MockBookingRepository) {
				passengers.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, passengers, bookings := newTestPassengerService(t)
			tt.setupMock(passengers, bookings)

			err := svc.Delete(context.Background(), id.String())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPassengerService_Create(t *testing.T) {
	svc, passengers, _ := newTestPassengerService(t)
	dob := "1990-04-12"

	passengers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *entity.Passenger) error {
			require.NotNil(t, p.DateOfBirth)
			assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), *p.DateOfBirth)
			assert.Equal(t, "rina@example.com", p.Email)
			return nil
		})

	resp, err := svc.Create(context.Background(), &request.CreatePassengerRequest{
		FirstName:   "Rina",
		LastName:    "Hartono",
		Email:       "Rina@Example.com",
		Phone:       "+62811000111",
		DateOfBirth: &dob,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.DateOfBirth)
	assert.Equal(t, dob, *resp.DateOfBirth)
}

func TestPassengerService_CreateRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestPassengerService(t)
	badDate := "12-04-1990"

	_, err := svc.Create(context.Background(), &request.CreatePassengerRequest{
		FirstName:   "Rina",
		LastName:    "Hartono",
		Email:       "rina@example.com",
		Phone:       "+62811000111",
		DateOfBirth: &badDate,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Create(context.Background(), &request.CreatePassengerRequest{FirstName: "Rina"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestPassengerService_SearchEmptyTerm(t *testing.T) {
	svc, _, _ := newTestPassengerService(t)

	results, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestPassengerService_Search(t *testing.T) {
	svc, passengers, _ := newTestPassengerService(t)

	passengers.EXPECT().Search(gomock.Any(), "hart", searchLimit).Return([]*entity.Passenger{
		{Base: entity.Base{ID: uuid.New()}, FirstName: "Rina", LastName: "Hartono"},
	}, nil)

	results, err := svc.Search(context.Background(), " hart ")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Hartono", results[0].LastName)
}

func TestPassengerService_GetAll(t *testing.T) {
	svc, passengers, _ := newTestPassengerService(t)

	passengers.EXPECT().FindAll(gomock.Any(), 2, 2).Return([]*entity.PassengerView{
		{Passenger: entity.Passenger{Base: entity.Base{ID: uuid.New()}}, BookingCount: 3},
	}, nil)
	passengers.EXPECT().CountAll(gomock.Any()).Return(int64(3), nil)

	page, err := svc.GetAll(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 2})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].BookingCount)
	assert.Equal(t, 3, *page.Data[0].BookingCount)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
