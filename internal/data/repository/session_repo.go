package repository

//go:generate go run go.uber.org/mock/mockgen -source=./session_repo.go -destination=./mocks/session_repo_mock.go -package=mocks

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

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	RevokeAllStaffSessions(ctx context.Context, staffID uuid.UUID) error
	CleanExpiredSessions(ctx context.Context) error
}

type sessionRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSessionRepository(db database.Querier, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, staff_id, token, user_agent, ip_address, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.StaffID,
		session.Token,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("staff_id", session.StaffID.String()),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// FindValidSession returns the session for token if it is neither revoked nor expired.
func (r *sessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	query := `
		SELECT id, staff_id, token, user_agent, ip_address, expires_at, revoked_at, created_at
		FROM sessions
		WHERE token = $1
		  AND revoked_at IS NULL
		  AND expires_at > NOW()
	`

	var session entity.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.StaffID,
		&session.Token,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	query := `UPDATE sessions SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *sessionRepository) RevokeAllStaffSessions(ctx context.Context, staffID uuid.UUID) error {
	query := `UPDATE sessions SET revoked_at = NOW() WHERE staff_id = $1 AND revoked_at IS NULL`

	if _, err := r.db.Exec(ctx, query, staffID); err != nil {
		r.log.Error("Failed to revoke staff sessions",
			zap.Error(err),
			zap.String("staff_id", staffID.String()),
		)
		return fmt.Errorf("revoke sessions of staff %s: %w", staffID, err)
	}

	return nil
}

// CleanExpiredSessions removes sessions that expired more than a week ago.
func (r *sessionRepository) CleanExpiredSessions(ctx context.Context) error {
	query := `DELETE FROM sessions WHERE expires_at < NOW() - INTERVAL '7 days'`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean expired sessions", zap.Error(err))
		return fmt.Errorf("clean sessions: %w", err)
	}

	r.log.Debug("Expired sessions cleaned", zap.Int64("rows", result.RowsAffected()))
	return nil
}
