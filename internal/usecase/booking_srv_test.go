package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/data/repository/mocks"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/seatmap"
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testFlight(id uuid.UUID, status entity.FlightStatus) *entity.FlightView {
	return &entity.FlightView{
		Flight: entity.Flight{
			Base:            entity.Base{ID: id},
			FlightNumber:    "GA404",
			EconomyPrice:    120,
			BusinessPrice:   480,
			FirstClassPrice: 950,
			Status:          status,
		},
		Aircraft: entity.Aircraft{
			EconomySeats:    150,
			BusinessSeats:   20,
			FirstClassSeats: 24,
		},
	}
}

func newTestBookingService(t *testing.T) (*bookingService, *mocks.MockFlightRepository, *mocks.MockBookingRepository) {
	ctrl := gomock.NewController(t)
	flights := mocks.NewMockFlightRepository(ctrl)
	bookings := mocks.NewMockBookingRepository(ctrl)

	repo := &repository.Repository{Flight: flights, Booking: bookings}
	svc := NewBookingService(repo, seatmap.Default, zap.NewNop()).(*bookingService)
	svc.newReference = func() string { return "ABC123" }

	return svc, flights, bookings
}

func TestBookingService_Create(t *testing.T) {
	flightID := uuid.New()
	passengerID := uuid.New()

	referenceTaken := &pgconn.PgError{Code: "23505", ConstraintName: repository.BookingReferenceConstraint}

	tests := []struct {
		name      string
		req       request.CreateBookingRequest
		setupMock func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository)
		wantCode  int
		wantMsg   string
		wantSeat  string
		wantPrice float64
	}{
		{
			name: "assigns first free seat in class",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "economy"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusScheduled), nil)
				bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassEconomy).Return(2, nil)
				bookings.EXPECT().FindTakenSeats(gomock.Any(), flightID).Return([]string{"10A", "10B", "1A"}, nil)
				bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSeat:  "10C",
			wantPrice: 120,
		},
		{
			name: "delayed flights stay bookable",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "first_class"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusDelayed), nil)
				bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassFirst).Return(0, nil)
				bookings.EXPECT().FindTakenSeats(gomock.Any(), flightID).Return(nil, nil)
				bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSeat:  "1A",
			wantPrice: 950,
		},
		{
			name: "flight not found",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "economy"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(nil, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled flight",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "economy"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusCancelled), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Flight is not available for booking",
		},
		{
			name: "class at capacity",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "business"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusBoarding), nil)
				bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassBusiness).Return(20, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "No business seats available",
		},
		{
			name: "section exhausted before capacity",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "first_class"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusScheduled), nil)
				bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassFirst).Return(16, nil)
				section, _ := seatmap.Default.Section(entity.SeatClassFirst)
				bookings.EXPECT().FindTakenSeats(gomock.Any(), flightID).Return(section.Seats(), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Could not assign seat automatically",
		},
		{
			name: "database failure",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "economy"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(nil, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "reference collisions exhaust retries",
			req:  request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "economy"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {
				flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusScheduled), nil).Times(referenceAttempts)
				bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassEconomy).Return(0, nil).Times(referenceAttempts)
				bookings.EXPECT().FindTakenSeats(gomock.Any(), flightID).Return(nil, nil).Times(referenceAttempts)
				bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(referenceTaken).Times(referenceAttempts)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "invalid seat class",
			req:       request.CreateBookingRequest{FlightID: flightID.String(), PassengerID: passengerID.String(), SeatClass: "premium"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing passenger",
			req:       request.CreateBookingRequest{FlightID: flightID.String(), SeatClass: "economy"},
			setupMock: func(flights *mocks.MockFlightRepository, bookings *mocks.MockBookingRepository) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, flights, bookings := newTestBookingService(t)
			tt.setupMock(flights, bookings)

			var created *entity.Booking
			if tt.wantCode == 0 {
				bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, id uuid.UUID) (*entity.BookingView, error) {
						return &entity.BookingView{Booking: *created}, nil
					})
				svc.repo.Booking = &capturingBookings{MockBookingRepository: bookings, created: &created}
			}

			resp, err := svc.Create(context.Background(), &tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSeat, resp.SeatNumber)
			assert.Equal(t, tt.wantPrice, resp.Price)
			assert.Equal(t, "ABC123", resp.BookingReference)
			assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
			assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus)
			assert.Equal(t, passengerID.String(), resp.PassengerID)
		})
	}
}

// capturingBookings records the booking handed to Create.
type capturingBookings struct {
	*mocks.MockBookingRepository
	created **entity.Booking
}

func (c *capturingBookings) Create(ctx context.Context, booking *entity.Booking) error {
	*c.created = booking
	return c.MockBookingRepository.Create(ctx, booking)
}

func TestBookingService_CreateRegeneratesCollidingReference(t *testing.T) {
	svc, flights, bookings := newTestBookingService(t)
	flightID := uuid.New()

	refs := []string{"DUP001", "NEW002"}
	svc.newReference = func() string {
		ref := refs[0]
		refs = refs[1:]
		return ref
	}

	flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusScheduled), nil).Times(2)
	bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassEconomy).Return(0, nil).Times(2)
	bookings.EXPECT().FindTakenSeats(gomock.Any(), flightID).Return(nil, nil).Times(2)

	var inserted []string
	bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *entity.Booking) error {
			inserted = append(inserted, b.BookingReference)
			if b.BookingReference == "DUP001" {
				return &pgconn.PgError{Code: "23505", ConstraintName: repository.BookingReferenceConstraint}
			}
			return nil
		}).Times(2)
	bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*entity.BookingView, error) {
			return &entity.BookingView{Booking: entity.Booking{ID: id, BookingReference: "NEW002", SeatNumber: "10A"}}, nil
		})

	resp, err := svc.Create(context.Background(), &request.CreateBookingRequest{
		FlightID:    flightID.String(),
		PassengerID: uuid.NewString(),
		SeatClass:   "economy",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"DUP001", "NEW002"}, inserted)
	assert.Equal(t, "NEW002", resp.BookingReference)
}

func TestBookingService_CreateSeatConflictIsNotRetried(t *testing.T) {
	svc, flights, bookings := newTestBookingService(t)
	flightID := uuid.New()

	flights.EXPECT().LockByID(gomock.Any(), flightID).Return(testFlight(flightID, entity.FlightStatusScheduled), nil)
	bookings.EXPECT().CountActiveByFlightAndClass(gomock.Any(), flightID, entity.SeatClassEconomy).Return(0, nil)
	bookings.EXPECT().FindTakenSeats(gomock.Any(), flightID).Return(nil, nil)
	bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "bookings_flight_seat_active_idx"})

	_, err := svc.Create(context.Background(), &request.CreateBookingRequest{
		FlightID:    flightID.String(),
		PassengerID: uuid.NewString(),
		SeatClass:   "economy",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_UpdateStatus(t *testing.T) {
	bookingID := uuid.New()

	tests := []struct {
		name        string
		current     entity.Booking
		status      string
		wantPayment entity.PaymentStatus
	}{
		{
			name:        "cancelling a paid booking refunds it",
			current:     entity.Booking{ID: bookingID, Status: entity.BookingStatusConfirmed, PaymentStatus: entity.PaymentStatusPaid},
			status:      "cancelled",
			wantPayment: entity.PaymentStatusRefunded,
		},
		{
			name:        "cancelling an unpaid booking also marks it refunded",
			current:     entity.Booking{ID: bookingID, Status: entity.BookingStatusConfirmed, PaymentStatus: entity.PaymentStatusPending},
			status:      "cancelled",
			wantPayment: entity.PaymentStatusRefunded,
		},
		{
			name:        "cancelling twice is allowed",
			current:     entity.Booking{ID: bookingID, Status: entity.BookingStatusCancelled, PaymentStatus: entity.PaymentStatusRefunded},
			status:      "cancelled",
			wantPayment: entity.PaymentStatusRefunded,
		},
		{
			name:        "check in leaves payment alone",
			current:     entity.Booking{ID: bookingID, Status: entity.BookingStatusConfirmed, PaymentStatus: entity.PaymentStatusPaid},
			status:      "checked_in",
			wantPayment: entity.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, bookings := newTestBookingService(t)

			status := entity.BookingStatus(tt.status)
			gomock.InOrder(
				bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(&entity.BookingView{Booking: tt.current}, nil),
				bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, status, tt.wantPayment).Return(nil),
				bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(&entity.BookingView{Booking: entity.Booking{
					ID: bookingID, Status: status, PaymentStatus: tt.wantPayment,
				}}, nil),
			)

			resp, err := svc.UpdateStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{Status: tt.status})

			require.NoError(t, err)
			assert.Equal(t, status, resp.Status)
			assert.Equal(t, tt.wantPayment, resp.PaymentStatus)
		})
	}
}

func TestBookingService_UpdateStatusCannotReinstateCancelled(t *testing.T) {
	for _, status := range []string{"confirmed", "checked_in", "boarded", "no_show"} {
		t.Run(status, func(t *testing.T) {
			svc, _, bookings := newTestBookingService(t)
			bookingID := uuid.New()

			bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(&entity.BookingView{Booking: entity.Booking{
				ID: bookingID, Status: entity.BookingStatusCancelled, PaymentStatus: entity.PaymentStatusRefunded,
			}}, nil)
			bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.UpdateStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{Status: status})

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.EqualError(t, err, "Cannot change status of a cancelled booking")
		})
	}
}

func TestBookingService_UpdateStatusNotFound(t *testing.T) {
	svc, _, bookings := newTestBookingService(t)
	bookingID := uuid.New()

	bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(nil, nil)

	_, err := svc.UpdateStatus(context.Background(), bookingID.String(), &request.UpdateBookingStatusRequest{Status: "boarded"})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_MarkPaid(t *testing.T) {
	bookingID := uuid.New()

	tests := []struct {
		name     string
		current  entity.Booking
		wantCode int
	}{
		{
			name:    "pending booking is paid",
			current: entity.Booking{ID: bookingID, Status: entity.BookingStatusConfirmed, PaymentStatus: entity.PaymentStatusPending},
		},
		{
			name:     "cancelled booking",
			current:  entity.Booking{ID: bookingID, Status: entity.BookingStatusCancelled, PaymentStatus: entity.PaymentStatusPending},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "already paid",
			current:  entity.Booking{ID: bookingID, Status: entity.BookingStatusConfirmed, PaymentStatus: entity.PaymentStatusPaid},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, bookings := newTestBookingService(t)

			bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(&entity.BookingView{Booking: tt.current}, nil)
			if tt.wantCode == 0 {
				bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, tt.current.Status, entity.PaymentStatusPaid).Return(nil)
				paid := tt.current
				paid.PaymentStatus = entity.PaymentStatusPaid
				bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(&entity.BookingView{Booking: paid}, nil)
			}

			resp, err := svc.MarkPaid(context.Background(), bookingID.String())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
		})
	}
}

func TestBookingService_Stats(t *testing.T) {
	svc, _, bookings := newTestBookingService(t)

	bookings.EXPECT().Aggregate(gomock.Any()).Return([]entity.BookingAggregate{
		{Status: entity.BookingStatusConfirmed, SeatClass: entity.SeatClassEconomy, PaymentStatus: entity.PaymentStatusPaid, Count: 3, Amount: 360},
		{Status: entity.BookingStatusConfirmed, SeatClass: entity.SeatClassEconomy, PaymentStatus: entity.PaymentStatusPending, Count: 2, Amount: 240},
		{Status: entity.BookingStatusCancelled, SeatClass: entity.SeatClassBusiness, PaymentStatus: entity.PaymentStatusRefunded, Count: 1, Amount: 480},
		{Status: entity.BookingStatusBoarded, SeatClass: entity.SeatClassFirst, PaymentStatus: entity.PaymentStatusPaid, Count: 1, Amount: 950},
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, map[string]int{"confirmed": 5, "cancelled": 1, "boarded": 1}, stats.StatusCounts)
	assert.Equal(t, entity.SeatCounts{Economy: 5, Business: 1, FirstClass: 1}, stats.ClassCounts)
	assert.InDelta(t, 1310.0, stats.Revenue, 0.001)
	assert.InDelta(t, 360.0, stats.RevenueByClass.Economy, 0.001)
	assert.InDelta(t, 0.0, stats.RevenueByClass.Business, 0.001)
	assert.InDelta(t, 950.0, stats.RevenueByClass.FirstClass, 0.001)
}
