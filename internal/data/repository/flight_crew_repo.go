package repository

//go:generate go run go.uber.org/mock/mockgen -source=./flight_crew_repo.go -destination=./mocks/flight_crew_repo_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlightCrewConstraint is the unique constraint on (flight_id, crew_id).
const FlightCrewConstraint = "flight_crew_flight_crew_key"

type FlightCrewRepository interface {
	Create(ctx context.Context, assignment *entity.FlightCrew) error
	Exists(ctx context.Context, flightID, crewID uuid.UUID) (bool, error)
	FindByFlightID(ctx context.Context, flightID uuid.UUID) ([]*entity.FlightCrewView, error)
	FindByCrewID(ctx context.Context, crewID uuid.UUID) ([]*entity.FlightCrewView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const flightCrewViewSelect = `
	SELECT fc.id, fc.flight_id, fc.crew_id, fc.role_on_flight, fc.created_at,
	       c.first_name, c.last_name, c.role, c.employee_id,
	       f.flight_number, f.departure_time, f.status
	FROM flight_crew fc
	JOIN crew c ON c.id = fc.crew_id
	JOIN flights f ON f.id = fc.flight_id
`

type flightCrewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFlightCrewRepository(db database.Querier, log *zap.Logger) FlightCrewRepository {
	return &flightCrewRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight_crew")),
	}
}

func (r *flightCrewRepository) Create(ctx context.Context, assignment *entity.FlightCrew) error {
	query := `
		INSERT INTO flight_crew (id, flight_id, crew_id, role_on_flight, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		assignment.ID,
		assignment.FlightID,
		assignment.CrewID,
		assignment.RoleOnFlight,
		assignment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to assign crew member",
			zap.Error(err),
			zap.String("flight_id", assignment.FlightID.String()),
			zap.String("crew_id", assignment.CrewID.String()),
		)
		return fmt.Errorf("assign crew %s to flight %s: %w", assignment.CrewID, assignment.FlightID, err)
	}

	return nil
}

func (r *flightCrewRepository) Exists(ctx context.Context, flightID, crewID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM flight_crew WHERE flight_id = $1 AND crew_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, flightID, crewID).Scan(&exists); err != nil {
		r.log.Error("Failed to check crew assignment",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
			zap.String("crew_id", crewID.String()),
		)
		return false, fmt.Errorf("check crew %s on flight %s: %w", crewID, flightID, err)
	}

	return exists, nil
}

func (r *flightCrewRepository) find(ctx context.Context, query string, id uuid.UUID) ([]*entity.FlightCrewView, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find crew assignments",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find crew assignments for %s: %w", id, err)
	}
	defer rows.Close()

	assignments := []*entity.FlightCrewView{}
	for rows.Next() {
		var a entity.FlightCrewView
		err := rows.Scan(
			&a.ID,
			&a.FlightID,
			&a.CrewID,
			&a.RoleOnFlight,
			&a.CreatedAt,
			&a.FirstName,
			&a.LastName,
			&a.Role,
			&a.EmployeeID,
			&a.FlightNumber,
			&a.DepartureTime,
			&a.FlightStatus,
		)
		if err != nil {
			r.log.Error("Failed to scan crew assignment row", zap.Error(err))
			return nil, fmt.Errorf("scan crew assignment row: %w", err)
		}
		assignments = append(assignments, &a)
	}

	return assignments, rows.Err()
}

func (r *flightCrewRepository) FindByFlightID(ctx context.Context, flightID uuid.UUID) ([]*entity.FlightCrewView, error) {
	return r.find(ctx, flightCrewViewSelect+` WHERE fc.flight_id = $1 ORDER BY c.role, c.last_name`, flightID)
}

func (r *flightCrewRepository) FindByCrewID(ctx context.Context, crewID uuid.UUID) ([]*entity.FlightCrewView, error) {
	return r.find(ctx, flightCrewViewSelect+` WHERE fc.crew_id = $1 ORDER BY f.departure_time DESC`, crewID)
}

func (r *flightCrewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM flight_crew WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to remove crew assignment",
			zap.Error(err),
			zap.String("assignment_id", id.String()),
		)
		return fmt.Errorf("remove crew assignment %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
