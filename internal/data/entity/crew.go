package entity

import (
	"time"

	"github.com/google/uuid"
)

type CrewRole string

const (
	CrewRoleCaptain         CrewRole = "captain"
	CrewRoleFirstOfficer    CrewRole = "first_officer"
	CrewRolePurser          CrewRole = "purser"
	CrewRoleFlightAttendant CrewRole = "flight_attendant"
	CrewRoleEngineer        CrewRole = "engineer"
)

type Crew struct {
	Base
	AirlineID     *uuid.UUID `db:"airline_id"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Role          CrewRole   `db:"role"`
	EmployeeID    string     `db:"employee_id"`
	LicenseNumber *string    `db:"license_number"`
	IsAvailable   bool       `db:"is_available"`
}

type CrewView struct {
	Crew
	AirlineName *string `db:"airline_name"`
	AirlineCode *string `db:"airline_code"`
}

type FlightCrew struct {
	BaseSimple
	FlightID     uuid.UUID `db:"flight_id"`
	CrewID       uuid.UUID `db:"crew_id"`
	RoleOnFlight string    `db:"role_on_flight"`
}

// FlightCrewView is an assignment joined with the crew member and the flight.
type FlightCrewView struct {
	FlightCrew
	FirstName     string
	LastName      string
	Role          CrewRole
	EmployeeID    string
	FlightNumber  string
	DepartureTime time.Time
	FlightStatus  FlightStatus
}
