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
	"airline-backoffice/internal/seatmap"
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type flightMocks struct {
	flights  *mocks.MockFlightRepository
	bookings *mocks.MockBookingRepository
	crew     *mocks.MockFlightCrewRepository
}

func newTestFlightService(t *testing.T) (*flightService, flightMocks) {
	ctrl := gomock.NewController(t)
	m := flightMocks{
		flights:  mocks.NewMockFlightRepository(ctrl),
		bookings: mocks.NewMockBookingRepository(ctrl),
		crew:     mocks.NewMockFlightCrewRepository(ctrl),
	}

	repo := &repository.Repository{Flight: m.flights, Booking: m.bookings, FlightCrew: m.crew}
	svc := NewFlightService(repo, seatmap.Default, zap.NewNop()).(*flightService)
	return svc, m
}

func TestFlightService_Search(t *testing.T) {
	svc, m := newTestFlightService(t)

	full := testFlight(uuid.New(), entity.FlightStatusScheduled)
	open := testFlight(uuid.New(), entity.FlightStatusBoarding)
	origin := uuid.New()

	m.flights.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter repository.FlightFilter) ([]*entity.FlightView, error) {
			require.NotNil(t, filter.OriginID)
			assert.Equal(t, origin, *filter.OriginID)
			assert.Nil(t, filter.DestinationID)
			assert.Equal(t, []entity.FlightStatus{entity.FlightStatusScheduled, entity.FlightStatusBoarding}, filter.Statuses)

			require.NotNil(t, filter.DepartFrom)
			require.NotNil(t, filter.DepartUntil)
			assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *filter.DepartFrom)
			assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *filter.DepartUntil)
			return []*entity.FlightView{full, open}, nil
		})
	m.bookings.EXPECT().CountActiveByFlights(gomock.Any(), []uuid.UUID{full.ID, open.ID}).Return(map[uuid.UUID]entity.SeatCounts{
		full.ID: {Economy: 10, Business: 20},
		open.ID: {Economy: 149},
	}, nil)

	results, err := svc.Search(context.Background(), &request.FlightSearchRequest{
		Origin:    origin.String(),
		Date:      "2026-03-14",
		SeatClass: "business",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, open.ID.String(), results[0].ID)
	require.NotNil(t, results[0].AvailableSeats)
	assert.Equal(t, entity.SeatCounts{Economy: 1, Business: 20, FirstClass: 24}, *results[0].AvailableSeats)
}

func TestFlightService_SearchRejectsBadInput(t *testing.T) {
	svc, _ := newTestFlightService(t)

	_, err := svc.Search(context.Background(), &request.FlightSearchRequest{Date: "14/03/2026"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Search(context.Background(), &request.FlightSearchRequest{Origin: "jfk"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestFlightService_Stats(t *testing.T) {
	svc, m := newTestFlightService(t)
	svc.now = func() time.Time { return time.Date(2026, 7, 1, 23, 30, 0, 0, time.FixedZone("WIB", 7*3600)) }

	m.flights.EXPECT().
		Stats(gomock.Any(), time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)).
		Return(&entity.FlightStats{
			Total:        4,
			StatusCounts: map[entity.FlightStatus]int{entity.FlightStatusScheduled: 3, entity.FlightStatusCancelled: 1},
			TodayCount:   2,
		}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.TodayCount)
	assert.Equal(t, map[string]int{"scheduled": 3, "cancelled": 1}, stats.StatusCounts)
}

func TestFlightService_CreateValidatesSchedule(t *testing.T) {
	departure := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	origin, destination := uuid.NewString(), uuid.NewString()

	base := func() request.CreateFlightRequest {
		return request.CreateFlightRequest{
			FlightNumber:         "ga404",
			AirlineID:            uuid.NewString(),
			AircraftID:           uuid.NewString(),
			OriginAirportID:      origin,
			DestinationAirportID: destination,
			DepartureTime:        departure,
			ArrivalTime:          departure.Add(95 * time.Minute),
			EconomyPrice:         120,
		}
	}

	tests := []struct {
		name   string
		mutate func(r *request.CreateFlightRequest)
	}{
		{name: "arrival before departure", mutate: func(r *request.CreateFlightRequest) { r.ArrivalTime = departure.Add(-time.Hour) }},
		{name: "arrival equals departure", mutate: func(r *request.CreateFlightRequest) { r.ArrivalTime = departure }},
		{name: "same airports", mutate: func(r *request.CreateFlightRequest) { r.DestinationAirportID = origin }},
		{name: "negative price", mutate: func(r *request.CreateFlightRequest) { r.BusinessPrice = -1 }},
		{name: "unknown status", mutate: func(r *request.CreateFlightRequest) { r.Status = "lost" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestFlightService(t)
			req := base()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), &req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestFlightService_Create(t *testing.T) {
	svc, m := newTestFlightService(t)
	departure := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	var stored *entity.Flight
	m.flights.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *entity.Flight) error {
			stored = f
			return nil
		})
	m.flights.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*entity.FlightView, error) {
			return &entity.FlightView{Flight: *stored}, nil
		})

	resp, err := svc.Create(context.Background(), &request.CreateFlightRequest{
		FlightNumber:         " ga404 ",
		AirlineID:            uuid.NewString(),
		AircraftID:           uuid.NewString(),
		OriginAirportID:      uuid.NewString(),
		DestinationAirportID: uuid.NewString(),
		DepartureTime:        departure,
		ArrivalTime:          departure.Add(95*time.Minute + 40*time.Second),
	})

	require.NoError(t, err)
	assert.Equal(t, "GA404", stored.FlightNumber)
	assert.Equal(t, 96, stored.DurationMinutes)
	assert.Equal(t, entity.FlightStatusScheduled, stored.Status)
	assert.Equal(t, stored.ID.String(), resp.ID)
}

func TestFlightService_UpdateRecomputesDuration(t *testing.T) {
	svc, m := newTestFlightService(t)
	flight := testFlight(uuid.New(), entity.FlightStatusScheduled)
	flight.OriginAirportID = uuid.New()
	flight.DestinationAirportID = uuid.New()
	flight.DepartureTime = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	flight.ArrivalTime = flight.DepartureTime.Add(2 * time.Hour)
	flight.DurationMinutes = 120

	newArrival := flight.DepartureTime.Add(3 * time.Hour)
	tooEarly := flight.DepartureTime.Add(-time.Minute)

	m.flights.EXPECT().FindByID(gomock.Any(), flight.ID).Return(flight, nil).Times(3)
	m.flights.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *entity.Flight) error {
			assert.Equal(t, 180, f.DurationMinutes)
			return nil
		})

	_, err := svc.Update(context.Background(), flight.ID.String(), &request.UpdateFlightRequest{ArrivalTime: &newArrival})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), flight.ID.String(), &request.UpdateFlightRequest{ArrivalTime: &tooEarly})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestFlightService_UpdateStatus(t *testing.T) {
	svc, m := newTestFlightService(t)
	flight := testFlight(uuid.New(), entity.FlightStatusDelayed)

	m.flights.EXPECT().UpdateStatus(gomock.Any(), flight.ID, entity.FlightStatusDelayed, 0).Return(nil)
	m.flights.EXPECT().FindByID(gomock.Any(), flight.ID).Return(flight, nil)

	resp, err := svc.UpdateStatus(context.Background(), flight.ID.String(), &request.UpdateFlightStatusRequest{Status: "delayed"})

	require.NoError(t, err)
	assert.Equal(t, entity.FlightStatusDelayed, resp.Status)
}

func TestFlightService_UpdateStatusMissingFlight(t *testing.T) {
	svc, m := newTestFlightService(t)
	id := uuid.New()
	delay := 45

	m.flights.EXPECT().UpdateStatus(gomock.Any(), id, entity.FlightStatusDelayed, 45).Return(repository.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), id.String(), &request.UpdateFlightStatusRequest{Status: "delayed", DelayMinutes: &delay})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFlightService_GetByID(t *testing.T) {
	svc, m := newTestFlightService(t)
	flight := testFlight(uuid.New(), entity.FlightStatusScheduled)

	m.flights.EXPECT().FindByID(gomock.Any(), flight.ID).Return(flight, nil)
	m.crew.EXPECT().FindByFlightID(gomock.Any(), flight.ID).Return([]*entity.FlightCrewView{{
		FlightCrew: entity.FlightCrew{BaseSimple: entity.BaseSimple{ID: uuid.New()}, FlightID: flight.ID, RoleOnFlight: "captain"},
		FirstName:  "Amelia",
	}}, nil)
	m.bookings.EXPECT().CountActiveByFlights(gomock.Any(), []uuid.UUID{flight.ID}).
		Return(map[uuid.UUID]entity.SeatCounts{flight.ID: {Economy: 12, FirstClass: 1}}, nil)

	detail, err := svc.GetByID(context.Background(), flight.ID.String())

	require.NoError(t, err)
	assert.Equal(t, flight.FlightNumber, detail.FlightNumber)
	require.Len(t, detail.Crew, 1)
	assert.Equal(t, "captain", detail.Crew[0].RoleOnFlight)
	assert.Equal(t, entity.SeatCounts{Economy: 12, FirstClass: 1}, detail.TakenSeats)
}

func TestFlightService_GetByIDNotFound(t *testing.T) {
	svc, m := newTestFlightService(t)
	id := uuid.New()

	m.flights.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.GetByID(context.Background(), id.String())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestFlightService_GetSeatMap(t *testing.T) {
	svc, m := newTestFlightService(t)
	flight := testFlight(uuid.New(), entity.FlightStatusScheduled)

	m.flights.EXPECT().FindByID(gomock.Any(), flight.ID).Return(flight, nil)
	m.bookings.EXPECT().FindTakenSeats(gomock.Any(), flight.ID).Return([]string{"1A", "5C", "10F", "12B"}, nil)

	seatMap, err := svc.GetSeatMap(context.Background(), flight.ID.String())

	require.NoError(t, err)
	assert.Equal(t, flight.FlightNumber, seatMap.FlightNumber)
	require.Len(t, seatMap.Sections, 3)

	taken := map[entity.SeatClass]int{}
	for _, section := range seatMap.Sections {
		taken[section.Class] = section.Taken
		assert.Equal(t, section.Total, section.Taken+section.Free)
	}
	assert.Equal(t, map[entity.SeatClass]int{
		entity.SeatClassFirst:    1,
		entity.SeatClassBusiness: 1,
		entity.SeatClassEconomy:  2,
	}, taken)
}
