package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCheckedIn BookingStatus = "checked_in"
	BookingStatusBoarded   BookingStatus = "boarded"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Active reports whether the booking still ties the passenger to a flight.
func (s BookingStatus) Active() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusBoarded:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID               uuid.UUID     `db:"id"`
	BookingReference string        `db:"booking_reference"`
	FlightID         uuid.UUID     `db:"flight_id"`
	PassengerID      uuid.UUID     `db:"passenger_id"`
	SeatClass        SeatClass     `db:"seat_class"`
	SeatNumber       string        `db:"seat_number"`
	Price            float64       `db:"price"`
	Status           BookingStatus `db:"status"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	SpecialRequests  *string       `db:"special_requests"`
	BookedAt         time.Time     `db:"booked_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

// BookingFlight is the flight summary carried by a booking row.
type BookingFlight struct {
	FlightNumber    string
	DepartureTime   time.Time
	ArrivalTime     time.Time
	Status          FlightStatus
	Gate            *string
	Terminal        *string
	AirlineName     string
	AirlineCode     string
	OriginCode      string
	OriginCity      string
	DestinationCode string
	DestinationCity string
}

// BookingPassenger is the passenger summary carried by a booking row.
type BookingPassenger struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type BookingView struct {
	Booking
	Flight    BookingFlight
	Passenger BookingPassenger
}

// BookingAggregate is one GROUP BY bucket of the bookings table.
type BookingAggregate struct {
	Status        BookingStatus
	SeatClass     SeatClass
	PaymentStatus PaymentStatus
	Count         int
	Amount        float64
}
