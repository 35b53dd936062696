package repository

//go:generate go run go.uber.org/mock/mockgen -source=./crew_repo.go -destination=./mocks/crew_repo_mock.go -package=mocks

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

type CrewRepository interface {
	Create(ctx context.Context, crew *entity.Crew) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CrewView, error)
	FindAll(ctx context.Context) ([]*entity.CrewView, error)
	FindAvailable(ctx context.Context) ([]*entity.CrewView, error)
	Update(ctx context.Context, crew *entity.Crew) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const crewViewSelect = `
	SELECT c.id, c.airline_id, c.first_name, c.last_name, c.role, c.employee_id,
	       c.license_number, c.is_available, c.created_at, c.updated_at, al.name, al.code
	FROM crew c
	LEFT JOIN airlines al ON al.id = c.airline_id
`

type crewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCrewRepository(db database.Querier, log *zap.Logger) CrewRepository {
	return &crewRepository{
		db:  db,
		log: log.With(zap.String("repository", "crew")),
	}
}

func scanCrewView(row pgx.Row) (*entity.CrewView, error) {
	var c entity.CrewView
	err := row.Scan(
		&c.ID,
		&c.AirlineID,
		&c.FirstName,
		&c.LastName,
		&c.Role,
		&c.EmployeeID,
		&c.LicenseNumber,
		&c.IsAvailable,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.AirlineName,
		&c.AirlineCode,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *crewRepository) collect(rows pgx.Rows) ([]*entity.CrewView, error) {
	defer rows.Close()

	members := []*entity.CrewView{}
	for rows.Next() {
		c, err := scanCrewView(rows)
		if err != nil {
			r.log.Error("Failed to scan crew row", zap.Error(err))
			return nil, fmt.Errorf("scan crew row: %w", err)
		}
		members = append(members, c)
	}
	return members, rows.Err()
}

func (r *crewRepository) Create(ctx context.Context, crew *entity.Crew) error {
	query := `
		INSERT INTO crew (id, airline_id, first_name, last_name, role, employee_id,
		                  license_number, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		crew.ID,
		crew.AirlineID,
		crew.FirstName,
		crew.LastName,
		crew.Role,
		crew.EmployeeID,
		crew.LicenseNumber,
		crew.IsAvailable,
		crew.CreatedAt,
		crew.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create crew member",
			zap.Error(err),
			zap.String("employee_id", crew.EmployeeID),
		)
		return fmt.Errorf("create crew member %s: %w", crew.EmployeeID, err)
	}

	return nil
}

func (r *crewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CrewView, error) {
	c, err := scanCrewView(r.db.QueryRow(ctx, crewViewSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find crew member by ID",
			zap.Error(err),
			zap.String("crew_id", id.String()),
		)
		return nil, fmt.Errorf("find crew member by ID %s: %w", id, err)
	}

	return c, nil
}

func (r *crewRepository) FindAll(ctx context.Context) ([]*entity.CrewView, error) {
	rows, err := r.db.Query(ctx, crewViewSelect+` ORDER BY c.last_name, c.first_name`)
	if err != nil {
		r.log.Error("Failed to find crew", zap.Error(err))
		return nil, fmt.Errorf("find crew: %w", err)
	}

	return r.collect(rows)
}

func (r *crewRepository) FindAvailable(ctx context.Context) ([]*entity.CrewView, error) {
	rows, err := r.db.Query(ctx, crewViewSelect+` WHERE c.is_available ORDER BY c.last_name, c.first_name`)
	if err != nil {
		r.log.Error("Failed to find available crew", zap.Error(err))
		return nil, fmt.Errorf("find available crew: %w", err)
	}

	return r.collect(rows)
}

func (r *crewRepository) Update(ctx context.Context, crew *entity.Crew) error {
	query := `
		UPDATE crew
		SET airline_id = $2, first_name = $3, last_name = $4, role = $5, employee_id = $6,
		    license_number = $7, is_available = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		crew.ID,
		crew.AirlineID,
		crew.FirstName,
		crew.LastName,
		crew.Role,
		crew.EmployeeID,
		crew.LicenseNumber,
		crew.IsAvailable,
		crew.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update crew member",
			zap.Error(err),
			zap.String("crew_id", crew.ID.String()),
		)
		return fmt.Errorf("update crew member %s: %w", crew.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *crewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM crew WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete crew member",
			zap.Error(err),
			zap.String("crew_id", id.String()),
		)
		return fmt.Errorf("delete crew member %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Crew member deleted", zap.String("crew_id", id.String()))
	return nil
}
