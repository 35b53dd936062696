package repository

import (
	"context"

	"airline-backoffice/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	Airline    AirlineRepository
	Airport    AirportRepository
	Aircraft   AircraftRepository
	Flight     FlightRepository
	Passenger  PassengerRepository
	Booking    BookingRepository
	Crew       CrewRepository
	FlightCrew FlightCrewRepository
	Staff      StaffRepository
	Session    SessionRepository

	runInTx func(ctx context.Context, fn func(*Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.runInTx = func(ctx context.Context, fn func(*Repository) error) error {
		return database.WithTx(ctx, db, func(tx pgx.Tx) error {
			return fn(newRepository(tx, log))
		})
	}
	return repo
}

func newRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Airline:    NewAirlineRepository(db, log),
		Airport:    NewAirportRepository(db, log),
		Aircraft:   NewAircraftRepository(db, log),
		Flight:     NewFlightRepository(db, log),
		Passenger:  NewPassengerRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Crew:       NewCrewRepository(db, log),
		FlightCrew: NewFlightCrewRepository(db, log),
		Staff:      NewStaffRepository(db, log),
		Session:    NewSessionRepository(db, log),
	}
}

// InTx runs fn with repositories bound to one transaction. Calls made on a
// Repository that is already transactional, or one assembled by hand without
// a pool, run fn directly.
func (r *Repository) InTx(ctx context.Context, fn func(*Repository) error) error {
	if r.runInTx == nil {
		return fn(r)
	}
	return r.runInTx(ctx, fn)
}
