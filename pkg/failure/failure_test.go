package failure

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequest("seat class %s", "luxury"), http.StatusBadRequest},
		{"not found", NotFound("flight %s not found", "x"), http.StatusNotFound},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"unauthorized", Unauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("admin only"), http.StatusForbidden},
		{"wrapped failure", fmt.Errorf("create booking: %w", NotFound("gone")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestFromPg(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "airlines_code_key"}
	err := FromPg(fmt.Errorf("insert: %w", unique), "airline")
	assert.Equal(t, http.StatusConflict, GetCode(err))
	assert.Contains(t, err.Error(), "airlines_code_key")

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "flights_aircraft_id_fkey"}
	assert.Equal(t, http.StatusBadRequest, GetCode(FromPg(fk, "flight")))

	plain := errors.New("connection reset")
	assert.Same(t, plain, FromPg(plain, "flight"))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert booking: %w", &pgconn.PgError{Code: "23505", ConstraintName: "bookings_booking_reference_key"})

	assert.True(t, IsUniqueViolation(err, "bookings_booking_reference_key"))
	assert.True(t, IsUniqueViolation(err, ""))
	assert.False(t, IsUniqueViolation(err, "bookings_flight_seat_active_idx"))
	assert.False(t, IsUniqueViolation(errors.New("x"), ""))
}
