package repository

//go:generate go run go.uber.org/mock/mockgen -source=./booking_repo.go -destination=./mocks/booking_repo_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingReferenceConstraint is the unique constraint on booking references.
const BookingReferenceConstraint = "bookings_booking_reference_key"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingView, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingView, error)
	CountAll(ctx context.Context) (int64, error)
	FindByFlightID(ctx context.Context, flightID uuid.UUID) ([]*entity.BookingView, error)
	FindByPassengerID(ctx context.Context, passengerID uuid.UUID) ([]*entity.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, payment entity.PaymentStatus) error

	// Allocation queries. Cancelled bookings never hold a seat.
	CountActiveByFlightAndClass(ctx context.Context, flightID uuid.UUID, class entity.SeatClass) (int, error)
	FindTakenSeats(ctx context.Context, flightID uuid.UUID) ([]string, error)
	CountActiveByFlights(ctx context.Context, flightIDs []uuid.UUID) (map[uuid.UUID]entity.SeatCounts, error)
	CountActiveByPassenger(ctx context.Context, passengerID uuid.UUID) (int, error)

	Aggregate(ctx context.Context) ([]entity.BookingAggregate, error)
}

const bookingViewSelect = `
	SELECT b.id, b.booking_reference, b.flight_id, b.passenger_id, b.seat_class, b.seat_number,
	       b.price, b.status, b.payment_status, b.special_requests, b.booked_at, b.updated_at,
	       f.flight_number, f.departure_time, f.arrival_time, f.status, f.gate, f.terminal,
	       al.name, al.code, o.code, o.city, d.code, d.city,
	       p.first_name, p.last_name, p.email, p.phone
	FROM bookings b
	JOIN flights f ON f.id = b.flight_id
	JOIN airlines al ON al.id = f.airline_id
	JOIN airports o ON o.id = f.origin_airport_id
	JOIN airports d ON d.id = f.destination_airport_id
	JOIN passengers p ON p.id = b.passenger_id
`

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBookingView(row pgx.Row) (*entity.BookingView, error) {
	var b entity.BookingView
	err := row.Scan(
		&b.ID,
		&b.BookingReference,
		&b.FlightID,
		&b.PassengerID,
		&b.SeatClass,
		&b.SeatNumber,
		&b.Price,
		&b.Status,
		&b.PaymentStatus,
		&b.SpecialRequests,
		&b.BookedAt,
		&b.UpdatedAt,
		&b.Flight.FlightNumber,
		&b.Flight.DepartureTime,
		&b.Flight.ArrivalTime,
		&b.Flight.Status,
		&b.Flight.Gate,
		&b.Flight.Terminal,
		&b.Flight.AirlineName,
		&b.Flight.AirlineCode,
		&b.Flight.OriginCode,
		&b.Flight.OriginCity,
		&b.Flight.DestinationCode,
		&b.Flight.DestinationCity,
		&b.Passenger.FirstName,
		&b.Passenger.LastName,
		&b.Passenger.Email,
		&b.Passenger.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.BookingView, error) {
	defer rows.Close()

	bookings := []*entity.BookingView{}
	for rows.Next() {
		b, err := scanBookingView(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_reference, flight_id, passenger_id, seat_class, seat_number,
		                      price, status, payment_status, special_requests, booked_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingReference,
		booking.FlightID,
		booking.PassengerID,
		booking.SeatClass,
		booking.SeatNumber,
		booking.Price,
		booking.Status,
		booking.PaymentStatus,
		booking.SpecialRequests,
		booking.BookedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_reference", booking.BookingReference),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingReference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingView, error) {
	b, err := scanBookingView(r.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return b, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+` ORDER BY b.booked_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) FindByFlightID(ctx context.Context, flightID uuid.UUID) ([]*entity.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+` WHERE b.flight_id = $1 ORDER BY b.booked_at DESC`, flightID)
	if err != nil {
		r.log.Error("Failed to find bookings by flight ID",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("find bookings by flight ID %s: %w", flightID, err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) FindByPassengerID(ctx context.Context, passengerID uuid.UUID) ([]*entity.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+` WHERE b.passenger_id = $1 ORDER BY b.booked_at DESC`, passengerID)
	if err != nil {
		r.log.Error("Failed to find bookings by passenger ID",
			zap.Error(err),
			zap.String("passenger_id", passengerID.String()),
		)
		return nil, fmt.Errorf("find bookings by passenger ID %s: %w", passengerID, err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, payment entity.PaymentStatus) error {
	query := `UPDATE bookings SET status = $2, payment_status = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, payment)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
			zap.String("payment_status", string(payment)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id, status, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *bookingRepository) CountActiveByFlightAndClass(ctx context.Context, flightID uuid.UUID, class entity.SeatClass) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE flight_id = $1 AND seat_class = $2 AND status <> 'cancelled'
	`

	var count int
	if err := r.db.QueryRow(ctx, query, flightID, class).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by class",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
			zap.String("seat_class", string(class)),
		)
		return 0, fmt.Errorf("count %s bookings on flight %s: %w", class, flightID, err)
	}

	return count, nil
}

// FindTakenSeats returns every seat held on the flight, across all classes.
func (r *bookingRepository) FindTakenSeats(ctx context.Context, flightID uuid.UUID) ([]string, error) {
	query := `SELECT seat_number FROM bookings WHERE flight_id = $1 AND status <> 'cancelled'`

	rows, err := r.db.Query(ctx, query, flightID)
	if err != nil {
		r.log.Error("Failed to find taken seats",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("find taken seats on flight %s: %w", flightID, err)
	}
	defer rows.Close()

	seats := []string{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// CountActiveByFlights returns per-class booking counts keyed by flight.
// Flights without bookings are absent from the map.
func (r *bookingRepository) CountActiveByFlights(ctx context.Context, flightIDs []uuid.UUID) (map[uuid.UUID]entity.SeatCounts, error) {
	counts := make(map[uuid.UUID]entity.SeatCounts, len(flightIDs))
	if len(flightIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT flight_id, seat_class, COUNT(*)
		FROM bookings
		WHERE flight_id = ANY($1) AND status <> 'cancelled'
		GROUP BY flight_id, seat_class
	`

	rows, err := r.db.Query(ctx, query, flightIDs)
	if err != nil {
		r.log.Error("Failed to count bookings by flight",
			zap.Error(err),
			zap.Int("flights", len(flightIDs)),
		)
		return nil, fmt.Errorf("count bookings by flight: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			flightID uuid.UUID
			class    entity.SeatClass
			n        int
		)
		if err := rows.Scan(&flightID, &class, &n); err != nil {
			r.log.Error("Failed to scan booking count row", zap.Error(err))
			return nil, fmt.Errorf("scan booking count row: %w", err)
		}
		c := counts[flightID]
		c.Add(class, n)
		counts[flightID] = c
	}

	return counts, rows.Err()
}

func (r *bookingRepository) CountActiveByPassenger(ctx context.Context, passengerID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE passenger_id = $1 AND status IN ('confirmed', 'checked_in', 'boarded')
	`

	var count int
	if err := r.db.QueryRow(ctx, query, passengerID).Scan(&count); err != nil {
		r.log.Error("Failed to count active bookings of passenger",
			zap.Error(err),
			zap.String("passenger_id", passengerID.String()),
		)
		return 0, fmt.Errorf("count active bookings of passenger %s: %w", passengerID, err)
	}

	return count, nil
}

func (r *bookingRepository) Aggregate(ctx context.Context) ([]entity.BookingAggregate, error) {
	query := `
		SELECT status, seat_class, payment_status, COUNT(*), COALESCE(SUM(price), 0)
		FROM bookings
		GROUP BY status, seat_class, payment_status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to aggregate bookings", zap.Error(err))
		return nil, fmt.Errorf("aggregate bookings: %w", err)
	}
	defer rows.Close()

	var buckets []entity.BookingAggregate
	for rows.Next() {
		var a entity.BookingAggregate
		if err := rows.Scan(&a.Status, &a.SeatClass, &a.PaymentStatus, &a.Count, &a.Amount); err != nil {
			r.log.Error("Failed to scan booking aggregate row", zap.Error(err))
			return nil, fmt.Errorf("scan booking aggregate row: %w", err)
		}
		buckets = append(buckets, a)
	}

	return buckets, rows.Err()
}
