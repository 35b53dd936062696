package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusArrived   FlightStatus = "arrived"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// Bookable reports whether new bookings may be taken for a flight in this status.
func (s FlightStatus) Bookable() bool {
	switch s {
	case FlightStatusCancelled, FlightStatusDeparted, FlightStatusArrived:
		return false
	}
	return true
}

type Flight struct {
	Base
	FlightNumber         string       `db:"flight_number"`
	AirlineID            uuid.UUID    `db:"airline_id"`
	AircraftID           uuid.UUID    `db:"aircraft_id"`
	OriginAirportID      uuid.UUID    `db:"origin_airport_id"`
	DestinationAirportID uuid.UUID    `db:"destination_airport_id"`
	DepartureTime        time.Time    `db:"departure_time"`
	ArrivalTime          time.Time    `db:"arrival_time"`
	DurationMinutes      int          `db:"duration_minutes"`
	EconomyPrice         float64      `db:"economy_price"`
	BusinessPrice        float64      `db:"business_price"`
	FirstClassPrice      float64      `db:"first_class_price"`
	Gate                 *string      `db:"gate"`
	Terminal             *string      `db:"terminal"`
	Status               FlightStatus `db:"status"`
	DelayMinutes         int          `db:"delay_minutes"`
}

// Price returns the fare for class.
func (f *Flight) Price(class SeatClass) float64 {
	switch class {
	case SeatClassEconomy:
		return f.EconomyPrice
	case SeatClassBusiness:
		return f.BusinessPrice
	case SeatClassFirst:
		return f.FirstClassPrice
	}
	return 0
}

// DurationBetween is the whole number of minutes from departure to arrival, rounded.
func DurationBetween(departure, arrival time.Time) int {
	return int(arrival.Sub(departure).Round(time.Minute) / time.Minute)
}

// FlightView is a flight joined with its airline, aircraft and both airports.
type FlightView struct {
	Flight
	AirlineName string
	AirlineCode string
	AirlineLogo *string
	Aircraft    Aircraft
	Origin      AirportSummary
	Destination AirportSummary
}

// FlightStats aggregates the flight table for the dashboard.
type FlightStats struct {
	Total        int
	StatusCounts map[FlightStatus]int
	TodayCount   int
}
