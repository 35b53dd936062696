package entity

import "github.com/google/uuid"

type Airport struct {
	Base
	Name     string `db:"name"`
	Code     string `db:"code"`
	City     string `db:"city"`
	Country  string `db:"country"`
	Timezone string `db:"timezone"`
}

// AirportSummary is the airport as embedded in a flight row.
type AirportSummary struct {
	ID       uuid.UUID
	Name     string
	Code     string
	City     string
	Timezone string
}
