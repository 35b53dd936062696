package entity

import "time"

type Passenger struct {
	Base
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Email          string     `db:"email"`
	Phone          string     `db:"phone"`
	PassportNumber *string    `db:"passport_number"`
	Nationality    *string    `db:"nationality"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
}

// PassengerView adds the number of bookings a passenger holds.
type PassengerView struct {
	Passenger
	BookingCount int `db:"booking_count"`
}
