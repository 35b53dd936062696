package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/dto/response"
	"airline-backoffice/internal/seatmap"
	"airline-backoffice/pkg/failure"
	"airline-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// referenceAttempts bounds how often a colliding booking reference is regenerated.
const referenceAttempts = 3

type BookingService interface {
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Stats(ctx context.Context) (*response.BookingStatsResponse, error)
	GetByFlight(ctx context.Context, flightID string) ([]response.BookingResponse, error)
	GetByPassenger(ctx context.Context, passengerID string) ([]response.BookingResponse, error)
	GetByID(ctx context.Context, id string) (*response.BookingResponse, error)
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	MarkPaid(ctx context.Context, id string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo         *repository.Repository
	seats        seatmap.Map
	newReference func() string
	log          *zap.Logger
}

func NewBookingService(repo *repository.Repository, seats seatmap.Map, log *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		seats:        seats,
		newReference: utils.GenerateBookingReference,
		log:          log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingViewsToResponse(bookings), req.Page, req.Limit(), total), nil
}

// Stats folds the grouped rows into totals. Revenue only counts paid bookings.
func (s *bookingService) Stats(ctx context.Context) (*response.BookingStatsResponse, error) {
	buckets, err := s.repo.Booking.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	stats := &response.BookingStatsResponse{StatusCounts: map[string]int{}}
	for _, b := range buckets {
		stats.Total += b.Count
		stats.StatusCounts[string(b.Status)] += b.Count
		stats.ClassCounts.Add(b.SeatClass, b.Count)

		if b.PaymentStatus == entity.PaymentStatusPaid {
			stats.Revenue += b.Amount
			stats.RevenueByClass.Add(b.SeatClass, b.Amount)
		}
	}

	return stats, nil
}

func (s *bookingService) GetByFlight(ctx context.Context, flightID string) ([]response.BookingResponse, error) {
	id, err := parseID("flight", flightID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByFlightID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight bookings: %w", err)
	}
	return response.BookingViewsToResponse(bookings), nil
}

func (s *bookingService) GetByPassenger(ctx context.Context, passengerID string) ([]response.BookingResponse, error) {
	id, err := parseID("passenger", passengerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByPassengerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger bookings: %w", err)
	}
	return response.BookingViewsToResponse(bookings), nil
}

func (s *bookingService) find(ctx context.Context, id uuid.UUID) (*entity.BookingView, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, failure.NotFound("booking %s not found", id)
	}
	return booking, nil
}

func (s *bookingService) respond(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.BookingViewToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*response.BookingResponse, error) {
	bookingID, err := parseID("booking", id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, bookingID)
}

// Create allocates a seat and books it. The flight row stays locked until the
// booking is committed, so concurrent bookings on one flight are serialized.
func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	flightID, err := parseID("flight", req.FlightID)
	if err != nil {
		return nil, err
	}
	passengerID, err := parseID("passenger", req.PassengerID)
	if err != nil {
		return nil, err
	}

	var booking *entity.Booking
	for attempt := 1; ; attempt++ {
		booking = &entity.Booking{
			ID:               uuid.New(),
			BookingReference: s.newReference(),
			FlightID:         flightID,
			PassengerID:      passengerID,
			SeatClass:        entity.SeatClass(req.SeatClass),
			Status:           entity.BookingStatusConfirmed,
			PaymentStatus:    entity.PaymentStatusPending,
			SpecialRequests:  req.SpecialRequests,
		}

		err = s.repo.InTx(ctx, func(tx *repository.Repository) error {
			return s.allocate(ctx, tx, booking)
		})
		if err == nil {
			break
		}
		if !failure.IsUniqueViolation(err, repository.BookingReferenceConstraint) || attempt == referenceAttempts {
			return nil, failure.FromPg(err, "booking")
		}

		s.log.Warn("Booking reference collision, retrying",
			zap.String("booking_reference", booking.BookingReference),
			zap.Int("attempt", attempt),
		)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_reference", booking.BookingReference),
		zap.String("flight_id", req.FlightID),
		zap.String("seat_class", req.SeatClass),
		zap.String("seat_number", booking.SeatNumber),
	)

	return s.respond(ctx, booking.ID)
}

// allocate fills in seat, price and timestamps for booking and inserts it.
func (s *bookingService) allocate(ctx context.Context, tx *repository.Repository, booking *entity.Booking) error {
	flight, err := tx.Flight.LockByID(ctx, booking.FlightID)
	if err != nil {
		return fmt.Errorf("lock flight: %w", err)
	}
	if flight == nil {
		return failure.NotFound("flight %s not found", booking.FlightID)
	}
	if !flight.Status.Bookable() {
		return failure.BadRequest("Flight is not available for booking")
	}

	class := booking.SeatClass
	booked, err := tx.Booking.CountActiveByFlightAndClass(ctx, flight.ID, class)
	if err != nil {
		return fmt.Errorf("count booked seats: %w", err)
	}
	if booked >= flight.Aircraft.Capacity(class) {
		return failure.BadRequest("No %s seats available", class)
	}

	taken, err := tx.Booking.FindTakenSeats(ctx, flight.ID)
	if err != nil {
		return fmt.Errorf("get taken seats: %w", err)
	}

	seat, err := s.seats.Assign(class, taken)
	if err != nil {
		if errors.Is(err, seatmap.ErrNoSeatAvailable) {
			return failure.BadRequest("Could not assign seat automatically")
		}
		return failure.BadRequest("%s", err.Error())
	}

	now := time.Now()
	booking.SeatNumber = seat
	booking.Price = flight.Price(class)
	booking.BookedAt = now
	booking.UpdatedAt = now

	return tx.Booking.Create(ctx, booking)
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	bookingID, err := parseID("booking", id)
	if err != nil {
		return nil, err
	}

	booking, err := s.find(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	status := entity.BookingStatus(req.Status)
	if booking.Status == entity.BookingStatusCancelled && status != entity.BookingStatusCancelled {
		return nil, failure.BadRequest("Cannot change status of a cancelled booking")
	}

	// a cancelled booking is always marked refunded, paid or not
	payment := booking.PaymentStatus
	if status == entity.BookingStatusCancelled {
		payment = entity.PaymentStatusRefunded
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, status, payment); err != nil {
		return nil, writeError(err, "booking", bookingID)
	}

	s.log.Info("Booking status changed",
		zap.String("booking_id", id),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
		zap.String("payment_status", string(payment)),
	)

	return s.respond(ctx, bookingID)
}

func (s *bookingService) MarkPaid(ctx context.Context, id string) (*response.BookingResponse, error) {
	bookingID, err := parseID("booking", id)
	if err != nil {
		return nil, err
	}

	booking, err := s.find(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, failure.BadRequest("Cannot pay for a cancelled booking")
	}
	if booking.PaymentStatus != entity.PaymentStatusPending {
		return nil, failure.BadRequest("Booking payment is already %s", booking.PaymentStatus)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, booking.Status, entity.PaymentStatusPaid); err != nil {
		return nil, writeError(err, "booking", bookingID)
	}

	s.log.Info("Booking paid",
		zap.String("booking_id", id),
		zap.Float64("amount", booking.Price),
	)

	return s.respond(ctx, bookingID)
}
