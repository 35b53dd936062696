package repository

//go:generate go run go.uber.org/mock/mockgen -source=./passenger_repo.go -destination=./mocks/passenger_repo_mock.go -package=mocks

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

type PassengerRepository interface {
	Create(ctx context.Context, passenger *entity.Passenger) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.PassengerView, error)
	CountAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Passenger, error)
	Update(ctx context.Context, passenger *entity.Passenger) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const passengerColumns = `p.id, p.first_name, p.last_name, p.email, p.phone, p.passport_number,
	p.nationality, p.date_of_birth, p.created_at, p.updated_at`

type passengerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPassengerRepository(db database.Querier, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func passengerDest(p *entity.Passenger) []any {
	return []any{
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.PassportNumber,
		&p.Nationality,
		&p.DateOfBirth,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func (r *passengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, first_name, last_name, email, phone, passport_number,
		                        nationality, date_of_birth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.FirstName,
		passenger.LastName,
		passenger.Email,
		passenger.Phone,
		passenger.PassportNumber,
		passenger.Nationality,
		passenger.DateOfBirth,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("email", passenger.Email),
		)
		return fmt.Errorf("create passenger %s: %w", passenger.Email, err)
	}

	return nil
}

func (r *passengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers p WHERE p.id = $1`

	var passenger entity.Passenger
	err := r.db.QueryRow(ctx, query, id).Scan(passengerDest(&passenger)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find passenger by ID",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return nil, fmt.Errorf("find passenger by ID %s: %w", id, err)
	}

	return &passenger, nil
}

func (r *passengerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.PassengerView, error) {
	query := `
		SELECT ` + passengerColumns + `, COUNT(b.id)
		FROM passengers p
		LEFT JOIN bookings b ON b.passenger_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find passengers",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find passengers: %w", err)
	}
	defer rows.Close()

	passengers := []*entity.PassengerView{}
	for rows.Next() {
		var p entity.PassengerView
		if err := rows.Scan(append(passengerDest(&p.Passenger), &p.BookingCount)...); err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &p)
	}

	return passengers, rows.Err()
}

func (r *passengerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&count); err != nil {
		r.log.Error("Failed to count passengers", zap.Error(err))
		return 0, fmt.Errorf("count passengers: %w", err)
	}
	return count, nil
}

// Search matches term against names, email and passport number, case-insensitively.
func (r *passengerRepository) Search(ctx context.Context, term string, limit int) ([]*entity.Passenger, error) {
	query := `
		SELECT ` + passengerColumns + `
		FROM passengers p
		WHERE p.first_name ILIKE '%' || $1 || '%'
		   OR p.last_name ILIKE '%' || $1 || '%'
		   OR p.email ILIKE '%' || $1 || '%'
		   OR p.passport_number ILIKE '%' || $1 || '%'
		ORDER BY p.last_name, p.first_name
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, term, limit)
	if err != nil {
		r.log.Error("Failed to search passengers",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search passengers %q: %w", term, err)
	}
	defer rows.Close()

	passengers := []*entity.Passenger{}
	for rows.Next() {
		var p entity.Passenger
		if err := rows.Scan(passengerDest(&p)...); err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &p)
	}

	return passengers, rows.Err()
}

func (r *passengerRepository) Update(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		UPDATE passengers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, passport_number = $6,
		    nationality = $7, date_of_birth = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.FirstName,
		passenger.LastName,
		passenger.Email,
		passenger.Phone,
		passenger.PassportNumber,
		passenger.Nationality,
		passenger.DateOfBirth,
		passenger.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update passenger",
			zap.Error(err),
			zap.String("passenger_id", passenger.ID.String()),
		)
		return fmt.Errorf("update passenger %s: %w", passenger.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *passengerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete passenger",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return fmt.Errorf("delete passenger %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Passenger deleted", zap.String("passenger_id", id.String()))
	return nil
}
