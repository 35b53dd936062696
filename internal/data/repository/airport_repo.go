package repository

//go:generate go run go.uber.org/mock/mockgen -source=./airport_repo.go -destination=./mocks/airport_repo_mock.go -package=mocks

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

type AirportRepository interface {
	Create(ctx context.Context, airport *entity.Airport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airport, error)
	FindAll(ctx context.Context) ([]*entity.Airport, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Airport, error)
	Update(ctx context.Context, airport *entity.Airport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const airportColumns = `id, name, code, city, country, timezone, created_at, updated_at`

type airportRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAirportRepository(db database.Querier, log *zap.Logger) AirportRepository {
	return &airportRepository{
		db:  db,
		log: log.With(zap.String("repository", "airport")),
	}
}

func scanAirport(row pgx.Row) (*entity.Airport, error) {
	var a entity.Airport
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Code,
		&a.City,
		&a.Country,
		&a.Timezone,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *airportRepository) collect(rows pgx.Rows) ([]*entity.Airport, error) {
	defer rows.Close()

	airports := []*entity.Airport{}
	for rows.Next() {
		airport, err := scanAirport(rows)
		if err != nil {
			r.log.Error("Failed to scan airport row", zap.Error(err))
			return nil, fmt.Errorf("scan airport row: %w", err)
		}
		airports = append(airports, airport)
	}
	return airports, rows.Err()
}

func (r *airportRepository) Create(ctx context.Context, airport *entity.Airport) error {
	query := `
		INSERT INTO airports (id, name, code, city, country, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		airport.ID,
		airport.Name,
		airport.Code,
		airport.City,
		airport.Country,
		airport.Timezone,
		airport.CreatedAt,
		airport.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create airport",
			zap.Error(err),
			zap.String("code", airport.Code),
		)
		return fmt.Errorf("create airport %s: %w", airport.Code, err)
	}

	return nil
}

func (r *airportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airport, error) {
	query := `SELECT ` + airportColumns + ` FROM airports WHERE id = $1`

	airport, err := scanAirport(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airport by ID",
			zap.Error(err),
			zap.String("airport_id", id.String()),
		)
		return nil, fmt.Errorf("find airport by ID %s: %w", id, err)
	}

	return airport, nil
}

func (r *airportRepository) FindAll(ctx context.Context) ([]*entity.Airport, error) {
	query := `SELECT ` + airportColumns + ` FROM airports ORDER BY city`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find airports", zap.Error(err))
		return nil, fmt.Errorf("find airports: %w", err)
	}

	return r.collect(rows)
}

// Search matches term against city, code and name, case-insensitively.
func (r *airportRepository) Search(ctx context.Context, term string, limit int) ([]*entity.Airport, error) {
	query := `
		SELECT ` + airportColumns + `
		FROM airports
		WHERE city ILIKE '%' || $1 || '%'
		   OR code ILIKE '%' || $1 || '%'
		   OR name ILIKE '%' || $1 || '%'
		ORDER BY city
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, term, limit)
	if err != nil {
		r.log.Error("Failed to search airports",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search airports %q: %w", term, err)
	}

	return r.collect(rows)
}

func (r *airportRepository) Update(ctx context.Context, airport *entity.Airport) error {
	query := `
		UPDATE airports
		SET name = $2, code = $3, city = $4, country = $5, timezone = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airport.ID,
		airport.Name,
		airport.Code,
		airport.City,
		airport.Country,
		airport.Timezone,
		airport.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update airport",
			zap.Error(err),
			zap.String("airport_id", airport.ID.String()),
		)
		return fmt.Errorf("update airport %s: %w", airport.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *airportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete airport",
			zap.Error(err),
			zap.String("airport_id", id.String()),
		)
		return fmt.Errorf("delete airport %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Airport deleted", zap.String("airport_id", id.String()))
	return nil
}
