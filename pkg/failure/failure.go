package failure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes mapped to client errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Failure carries an HTTP status code together with a client-facing message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func BadRequest(format string, args ...any) error {
	return &Failure{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Failure{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Failure{Code: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// InvalidID is returned when a path or body ID is not a UUID.
func InvalidID(entity, id string) error {
	return BadRequest("invalid %s ID format: %s", entity, id)
}

// FromPg converts constraint violations into client failures. Other errors
// are returned unchanged.
func FromPg(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return Conflict("%s already exists (%s)", entity, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return BadRequest("%s references a record that does not exist or is still referenced (%s)", entity, pgErr.ConstraintName)
	case pgCheckViolation:
		return BadRequest("%s violates constraint %s", entity, pgErr.ConstraintName)
	}

	return err
}

// IsUniqueViolation reports whether err is a unique violation on the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}

// GetCode returns the HTTP status for err, defaulting to 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
