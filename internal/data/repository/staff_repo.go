package repository

//go:generate go run go.uber.org/mock/mockgen -source=./staff_repo.go -destination=./mocks/staff_repo_mock.go -package=mocks

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

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	FindByUsername(ctx context.Context, username string) (*entity.Staff, error)
	FindAll(ctx context.Context) ([]*entity.Staff, error)
	CountAll(ctx context.Context) (int64, error)
}

const staffColumns = `id, username, password, full_name, role, is_active, created_at, updated_at`

type staffRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewStaffRepository(db database.Querier, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

func scanStaff(row pgx.Row) (*entity.Staff, error) {
	var s entity.Staff
	err := row.Scan(
		&s.ID,
		&s.Username,
		&s.PasswordHash,
		&s.FullName,
		&s.Role,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new staff account
func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	query := `
		INSERT INTO staff (id, username, password, full_name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.Username,
		staff.PasswordHash,
		staff.FullName,
		staff.Role,
		staff.IsActive,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create staff",
			zap.Error(err),
			zap.String("username", staff.Username),
		)
		return fmt.Errorf("create staff %s: %w", staff.Username, err)
	}

	return nil
}

func (r *staffRepository) findOne(ctx context.Context, where string, arg any) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE ` + where

	staff, err := scanStaff(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find staff: %w", err)
	}

	return staff, nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*entity.Staff, error) {
	return r.findOne(ctx, "LOWER(username) = LOWER($1)", username)
}

func (r *staffRepository) FindAll(ctx context.Context) ([]*entity.Staff, error) {
	rows, err := r.db.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY username`)
	if err != nil {
		r.log.Error("Failed to find staff", zap.Error(err))
		return nil, fmt.Errorf("find staff: %w", err)
	}
	defer rows.Close()

	accounts := []*entity.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			r.log.Error("Failed to scan staff row", zap.Error(err))
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		accounts = append(accounts, s)
	}

	return accounts, rows.Err()
}

func (r *staffRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		r.log.Error("Failed to count staff", zap.Error(err))
		return 0, fmt.Errorf("count staff: %w", err)
	}
	return count, nil
}
