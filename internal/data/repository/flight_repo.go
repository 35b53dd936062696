package repository

//go:generate go run go.uber.org/mock/mockgen -source=./flight_repo.go -destination=./mocks/flight_repo_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FlightFilter narrows a flight search. Nil fields are not applied.
type FlightFilter struct {
	OriginID      *uuid.UUID
	DestinationID *uuid.UUID
	DepartFrom    *time.Time
	DepartUntil   *time.Time
	Statuses      []entity.FlightStatus
}

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FlightView, error)
	LockByID(ctx context.Context, id uuid.UUID) (*entity.FlightView, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.FlightView, error)
	CountAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, filter FlightFilter) ([]*entity.FlightView, error)
	Stats(ctx context.Context, dayStart, dayEnd time.Time) (*entity.FlightStats, error)
	Update(ctx context.Context, flight *entity.Flight) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FlightStatus, delayMinutes int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const flightViewSelect = `
	SELECT f.id, f.flight_number, f.airline_id, f.aircraft_id, f.origin_airport_id,
	       f.destination_airport_id, f.departure_time, f.arrival_time, f.duration_minutes,
	       f.economy_price, f.business_price, f.first_class_price, f.gate, f.terminal,
	       f.status, f.delay_minutes, f.created_at, f.updated_at,
	       al.name, al.code, al.logo,
	       ac.id, ac.airline_id, ac.model, ac.registration, ac.total_seats, ac.economy_seats,
	       ac.business_seats, ac.first_class_seats, ac.status, ac.created_at, ac.updated_at,
	       o.id, o.name, o.code, o.city, o.timezone,
	       d.id, d.name, d.code, d.city, d.timezone
	FROM flights f
	JOIN airlines al ON al.id = f.airline_id
	JOIN aircraft ac ON ac.id = f.aircraft_id
	JOIN airports o ON o.id = f.origin_airport_id
	JOIN airports d ON d.id = f.destination_airport_id
`

type flightRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFlightRepository(db database.Querier, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

func scanFlightView(row pgx.Row) (*entity.FlightView, error) {
	var f entity.FlightView
	err := row.Scan(
		&f.ID,
		&f.FlightNumber,
		&f.AirlineID,
		&f.AircraftID,
		&f.OriginAirportID,
		&f.DestinationAirportID,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.DurationMinutes,
		&f.EconomyPrice,
		&f.BusinessPrice,
		&f.FirstClassPrice,
		&f.Gate,
		&f.Terminal,
		&f.Status,
		&f.DelayMinutes,
		&f.CreatedAt,
		&f.UpdatedAt,
		&f.AirlineName,
		&f.AirlineCode,
		&f.AirlineLogo,
		&f.Aircraft.ID,
		&f.Aircraft.AirlineID,
		&f.Aircraft.Model,
		&f.Aircraft.Registration,
		&f.Aircraft.TotalSeats,
		&f.Aircraft.EconomySeats,
		&f.Aircraft.BusinessSeats,
		&f.Aircraft.FirstClassSeats,
		&f.Aircraft.Status,
		&f.Aircraft.CreatedAt,
		&f.Aircraft.UpdatedAt,
		&f.Origin.ID,
		&f.Origin.Name,
		&f.Origin.Code,
		&f.Origin.City,
		&f.Origin.Timezone,
		&f.Destination.ID,
		&f.Destination.Name,
		&f.Destination.Code,
		&f.Destination.City,
		&f.Destination.Timezone,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *flightRepository) collect(rows pgx.Rows) ([]*entity.FlightView, error) {
	defer rows.Close()

	flights := []*entity.FlightView{}
	for rows.Next() {
		f, err := scanFlightView(rows)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, flight_number, airline_id, aircraft_id, origin_airport_id,
		                     destination_airport_id, departure_time, arrival_time, duration_minutes,
		                     economy_price, business_price, first_class_price, gate, terminal,
		                     status, delay_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.FlightNumber,
		flight.AirlineID,
		flight.AircraftID,
		flight.OriginAirportID,
		flight.DestinationAirportID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.DurationMinutes,
		flight.EconomyPrice,
		flight.BusinessPrice,
		flight.FirstClassPrice,
		flight.Gate,
		flight.Terminal,
		flight.Status,
		flight.DelayMinutes,
		flight.CreatedAt,
		flight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("create flight %s: %w", flight.FlightNumber, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FlightView, error) {
	return r.findOne(ctx, flightViewSelect+` WHERE f.id = $1`, id)
}

// LockByID loads the flight and holds a row lock on it until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *flightRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.FlightView, error) {
	return r.findOne(ctx, flightViewSelect+` WHERE f.id = $1 FOR UPDATE OF f`, id)
}

func (r *flightRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.FlightView, error) {
	f, err := scanFlightView(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id, err)
	}

	return f, nil
}

func (r *flightRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.FlightView, error) {
	query := flightViewSelect + ` ORDER BY f.departure_time ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find flights",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find flights: %w", err)
	}

	return r.collect(rows)
}

func (r *flightRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&count); err != nil {
		r.log.Error("Failed to count flights", zap.Error(err))
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return count, nil
}

func (r *flightRepository) Search(ctx context.Context, filter FlightFilter) ([]*entity.FlightView, error) {
	var (
		conditions []string
		args       []any
	)

	add := func(clause string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		add("f.status = ANY($%d)", statuses)
	}
	if filter.OriginID != nil {
		add("f.origin_airport_id = $%d", *filter.OriginID)
	}
	if filter.DestinationID != nil {
		add("f.destination_airport_id = $%d", *filter.DestinationID)
	}
	if filter.DepartFrom != nil {
		add("f.departure_time >= $%d", *filter.DepartFrom)
	}
	if filter.DepartUntil != nil {
		add("f.departure_time < $%d", *filter.DepartUntil)
	}

	query := flightViewSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY f.departure_time ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search flights", zap.Error(err))
		return nil, fmt.Errorf("search flights: %w", err)
	}

	return r.collect(rows)
}

// Stats counts flights per status and the departures in [dayStart, dayEnd).
func (r *flightRepository) Stats(ctx context.Context, dayStart, dayEnd time.Time) (*entity.FlightStats, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM flights GROUP BY status`)
	if err != nil {
		r.log.Error("Failed to count flights by status", zap.Error(err))
		return nil, fmt.Errorf("count flights by status: %w", err)
	}
	defer rows.Close()

	stats := &entity.FlightStats{StatusCounts: map[entity.FlightStatus]int{}}
	for rows.Next() {
		var (
			status entity.FlightStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan flight status row", zap.Error(err))
			return nil, fmt.Errorf("scan flight status row: %w", err)
		}
		stats.StatusCounts[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count flights by status: %w", err)
	}

	query := `SELECT COUNT(*) FROM flights WHERE departure_time >= $1 AND departure_time < $2`
	if err := r.db.QueryRow(ctx, query, dayStart, dayEnd).Scan(&stats.TodayCount); err != nil {
		r.log.Error("Failed to count flights departing today", zap.Error(err))
		return nil, fmt.Errorf("count flights departing today: %w", err)
	}

	return stats, nil
}

func (r *flightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	query := `
		UPDATE flights
		SET flight_number = $2, airline_id = $3, aircraft_id = $4, origin_airport_id = $5,
		    destination_airport_id = $6, departure_time = $7, arrival_time = $8,
		    duration_minutes = $9, economy_price = $10, business_price = $11,
		    first_class_price = $12, gate = $13, terminal = $14, status = $15,
		    delay_minutes = $16, updated_at = $17
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.FlightNumber,
		flight.AirlineID,
		flight.AircraftID,
		flight.OriginAirportID,
		flight.DestinationAirportID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.DurationMinutes,
		flight.EconomyPrice,
		flight.BusinessPrice,
		flight.FirstClassPrice,
		flight.Gate,
		flight.Terminal,
		flight.Status,
		flight.DelayMinutes,
		flight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("update flight %s: %w", flight.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *flightRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FlightStatus, delayMinutes int) error {
	query := `UPDATE flights SET status = $2, delay_minutes = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, delayMinutes)
	if err != nil {
		r.log.Error("Failed to update flight status",
			zap.Error(err),
			zap.String("flight_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update flight %s status to %s: %w", id, status, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("delete flight %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Flight deleted", zap.String("flight_id", id.String()))
	return nil
}
