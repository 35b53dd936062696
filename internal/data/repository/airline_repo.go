package repository

//go:generate go run go.uber.org/mock/mockgen -source=./airline_repo.go -destination=./mocks/airline_repo_mock.go -package=mocks

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

type AirlineRepository interface {
	Create(ctx context.Context, airline *entity.Airline) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error)
	FindAll(ctx context.Context) ([]*entity.Airline, error)
	Update(ctx context.Context, airline *entity.Airline) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*entity.Airline, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const airlineColumns = `id, name, code, logo, country, is_active, created_at, updated_at`

type airlineRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAirlineRepository(db database.Querier, log *zap.Logger) AirlineRepository {
	return &airlineRepository{
		db:  db,
		log: log.With(zap.String("repository", "airline")),
	}
}

func scanAirline(row pgx.Row) (*entity.Airline, error) {
	var a entity.Airline
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Code,
		&a.Logo,
		&a.Country,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *airlineRepository) Create(ctx context.Context, airline *entity.Airline) error {
	query := `
		INSERT INTO airlines (id, name, code, logo, country, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		airline.ID,
		airline.Name,
		airline.Code,
		airline.Logo,
		airline.Country,
		airline.IsActive,
		airline.CreatedAt,
		airline.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create airline",
			zap.Error(err),
			zap.String("code", airline.Code),
		)
		return fmt.Errorf("create airline %s: %w", airline.Code, err)
	}

	return nil
}

func (r *airlineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error) {
	query := `SELECT ` + airlineColumns + ` FROM airlines WHERE id = $1`

	airline, err := scanAirline(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airline by ID",
			zap.Error(err),
			zap.String("airline_id", id.String()),
		)
		return nil, fmt.Errorf("find airline by ID %s: %w", id, err)
	}

	return airline, nil
}

func (r *airlineRepository) FindAll(ctx context.Context) ([]*entity.Airline, error) {
	query := `SELECT ` + airlineColumns + ` FROM airlines ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find airlines", zap.Error(err))
		return nil, fmt.Errorf("find airlines: %w", err)
	}
	defer rows.Close()

	airlines := []*entity.Airline{}
	for rows.Next() {
		airline, err := scanAirline(rows)
		if err != nil {
			r.log.Error("Failed to scan airline row", zap.Error(err))
			return nil, fmt.Errorf("scan airline row: %w", err)
		}
		airlines = append(airlines, airline)
	}

	return airlines, rows.Err()
}

func (r *airlineRepository) Update(ctx context.Context, airline *entity.Airline) error {
	query := `
		UPDATE airlines
		SET name = $2, code = $3, logo = $4, country = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airline.ID,
		airline.Name,
		airline.Code,
		airline.Logo,
		airline.Country,
		airline.IsActive,
		airline.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update airline",
			zap.Error(err),
			zap.String("airline_id", airline.ID.String()),
		)
		return fmt.Errorf("update airline %s: %w", airline.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *airlineRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*entity.Airline, error) {
	query := `
		UPDATE airlines
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + airlineColumns

	airline, err := scanAirline(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle airline",
			zap.Error(err),
			zap.String("airline_id", id.String()),
		)
		return nil, fmt.Errorf("toggle airline %s: %w", id, err)
	}

	return airline, nil
}

func (r *airlineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM airlines WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete airline",
			zap.Error(err),
			zap.String("airline_id", id.String()),
		)
		return fmt.Errorf("delete airline %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Airline deleted", zap.String("airline_id", id.String()))
	return nil
}
