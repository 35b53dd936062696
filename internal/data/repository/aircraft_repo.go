package repository

//go:generate go run go.uber.org/mock/mockgen -source=./aircraft_repo.go -destination=./mocks/aircraft_repo_mock.go -package=mocks

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

type AircraftRepository interface {
	Create(ctx context.Context, aircraft *entity.Aircraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AircraftView, error)
	FindAll(ctx context.Context) ([]*entity.AircraftView, error)
	FindByAirlineID(ctx context.Context, airlineID uuid.UUID) ([]*entity.AircraftView, error)
	Update(ctx context.Context, aircraft *entity.Aircraft) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AircraftStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const aircraftViewSelect = `
	SELECT ac.id, ac.airline_id, ac.model, ac.registration, ac.total_seats,
	       ac.economy_seats, ac.business_seats, ac.first_class_seats, ac.status,
	       ac.created_at, ac.updated_at, al.name, al.code
	FROM aircraft ac
	JOIN airlines al ON al.id = ac.airline_id
`

type aircraftRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAircraftRepository(db database.Querier, log *zap.Logger) AircraftRepository {
	return &aircraftRepository{
		db:  db,
		log: log.With(zap.String("repository", "aircraft")),
	}
}

func scanAircraftView(row pgx.Row) (*entity.AircraftView, error) {
	var a entity.AircraftView
	err := row.Scan(
		&a.ID,
		&a.AirlineID,
		&a.Model,
		&a.Registration,
		&a.TotalSeats,
		&a.EconomySeats,
		&a.BusinessSeats,
		&a.FirstClassSeats,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.AirlineName,
		&a.AirlineCode,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *aircraftRepository) collect(rows pgx.Rows) ([]*entity.AircraftView, error) {
	defer rows.Close()

	fleet := []*entity.AircraftView{}
	for rows.Next() {
		a, err := scanAircraftView(rows)
		if err != nil {
			r.log.Error("Failed to scan aircraft row", zap.Error(err))
			return nil, fmt.Errorf("scan aircraft row: %w", err)
		}
		fleet = append(fleet, a)
	}
	return fleet, rows.Err()
}

func (r *aircraftRepository) Create(ctx context.Context, aircraft *entity.Aircraft) error {
	query := `
		INSERT INTO aircraft (id, airline_id, model, registration, total_seats, economy_seats,
		                      business_seats, first_class_seats, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		aircraft.ID,
		aircraft.AirlineID,
		aircraft.Model,
		aircraft.Registration,
		aircraft.TotalSeats,
		aircraft.EconomySeats,
		aircraft.BusinessSeats,
		aircraft.FirstClassSeats,
		aircraft.Status,
		aircraft.CreatedAt,
		aircraft.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create aircraft",
			zap.Error(err),
			zap.String("registration", aircraft.Registration),
		)
		return fmt.Errorf("create aircraft %s: %w", aircraft.Registration, err)
	}

	return nil
}

func (r *aircraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AircraftView, error) {
	a, err := scanAircraftView(r.db.QueryRow(ctx, aircraftViewSelect+` WHERE ac.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find aircraft by ID",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
		)
		return nil, fmt.Errorf("find aircraft by ID %s: %w", id, err)
	}

	return a, nil
}

func (r *aircraftRepository) FindAll(ctx context.Context) ([]*entity.AircraftView, error) {
	rows, err := r.db.Query(ctx, aircraftViewSelect+` ORDER BY ac.created_at DESC`)
	if err != nil {
		r.log.Error("Failed to find aircraft", zap.Error(err))
		return nil, fmt.Errorf("find aircraft: %w", err)
	}

	return r.collect(rows)
}

func (r *aircraftRepository) FindByAirlineID(ctx context.Context, airlineID uuid.UUID) ([]*entity.AircraftView, error) {
	rows, err := r.db.Query(ctx, aircraftViewSelect+` WHERE ac.airline_id = $1 ORDER BY ac.model`, airlineID)
	if err != nil {
		r.log.Error("Failed to find aircraft by airline",
			zap.Error(err),
			zap.String("airline_id", airlineID.String()),
		)
		return nil, fmt.Errorf("find aircraft by airline %s: %w", airlineID, err)
	}

	return r.collect(rows)
}

func (r *aircraftRepository) Update(ctx context.Context, aircraft *entity.Aircraft) error {
	query := `
		UPDATE aircraft
		SET airline_id = $2, model = $3, registration = $4, total_seats = $5, economy_seats = $6,
		    business_seats = $7, first_class_seats = $8, status = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		aircraft.ID,
		aircraft.AirlineID,
		aircraft.Model,
		aircraft.Registration,
		aircraft.TotalSeats,
		aircraft.EconomySeats,
		aircraft.BusinessSeats,
		aircraft.FirstClassSeats,
		aircraft.Status,
		aircraft.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update aircraft",
			zap.Error(err),
			zap.String("aircraft_id", aircraft.ID.String()),
		)
		return fmt.Errorf("update aircraft %s: %w", aircraft.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *aircraftRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AircraftStatus) error {
	query := `UPDATE aircraft SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update aircraft status",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update aircraft %s status to %s: %w", id, status, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *aircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM aircraft WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete aircraft",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
		)
		return fmt.Errorf("delete aircraft %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Aircraft deleted", zap.String("aircraft_id", id.String()))
	return nil
}
