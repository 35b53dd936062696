package entity

import "github.com/google/uuid"

type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "active"
	AircraftStatusMaintenance AircraftStatus = "maintenance"
	AircraftStatusRetired     AircraftStatus = "retired"
)

type Aircraft struct {
	Base
	AirlineID       uuid.UUID      `db:"airline_id"`
	Model           string         `db:"model"`
	Registration    string         `db:"registration"`
	TotalSeats      int            `db:"total_seats"`
	EconomySeats    int            `db:"economy_seats"`
	BusinessSeats   int            `db:"business_seats"`
	FirstClassSeats int            `db:"first_class_seats"`
	Status          AircraftStatus `db:"status"`
}

// Capacity returns the number of seats configured for class.
func (a *Aircraft) Capacity(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return a.EconomySeats
	case SeatClassBusiness:
		return a.BusinessSeats
	case SeatClassFirst:
		return a.FirstClassSeats
	}
	return 0
}

// Capacities returns the per-class seat configuration.
func (a *Aircraft) Capacities() SeatCounts {
	return SeatCounts{
		Economy:    a.EconomySeats,
		Business:   a.BusinessSeats,
		FirstClass: a.FirstClassSeats,
	}
}

// AircraftView is an aircraft joined with its airline.
type AircraftView struct {
	Aircraft
	AirlineName string `db:"airline_name"`
	AirlineCode string `db:"airline_code"`
}
