package request

import "time"

type CreateFlightRequest struct {
	FlightNumber         string    `json:"flight_number" validate:"required,max=10"`
	AirlineID            string    `json:"airline_id" validate:"required,uuid"`
	AircraftID           string    `json:"aircraft_id" validate:"required,uuid"`
	OriginAirportID      string    `json:"origin_airport_id" validate:"required,uuid"`
	DestinationAirportID string    `json:"destination_airport_id" validate:"required,uuid,nefield=OriginAirportID"`
	DepartureTime        time.Time `json:"departure_time" validate:"required"`
	ArrivalTime          time.Time `json:"arrival_time" validate:"required"`
	EconomyPrice         float64   `json:"economy_price" validate:"gte=0"`
	BusinessPrice        float64   `json:"business_price" validate:"gte=0"`
	FirstClassPrice      float64   `json:"first_class_price" validate:"gte=0"`
	Gate                 *string   `json:"gate,omitempty" validate:"omitempty,max=10"`
	Terminal             *string   `json:"terminal,omitempty" validate:"omitempty,max=10"`
	Status               string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled boarding departed arrived delayed cancelled"`
}

type UpdateFlightRequest struct {
	FlightNumber         *string    `json:"flight_number,omitempty" validate:"omitempty,min=1,max=10"`
	AirlineID            *string    `json:"airline_id,omitempty" validate:"omitempty,uuid"`
	AircraftID           *string    `json:"aircraft_id,omitempty" validate:"omitempty,uuid"`
	OriginAirportID      *string    `json:"origin_airport_id,omitempty" validate:"omitempty,uuid"`
	DestinationAirportID *string    `json:"destination_airport_id,omitempty" validate:"omitempty,uuid"`
	DepartureTime        *time.Time `json:"departure_time,omitempty"`
	ArrivalTime          *time.Time `json:"arrival_time,omitempty"`
	EconomyPrice         *float64   `json:"economy_price,omitempty" validate:"omitempty,gte=0"`
	BusinessPrice        *float64   `json:"business_price,omitempty" validate:"omitempty,gte=0"`
	FirstClassPrice      *float64   `json:"first_class_price,omitempty" validate:"omitempty,gte=0"`
	Gate                 *string    `json:"gate,omitempty" validate:"omitempty,max=10"`
	Terminal             *string    `json:"terminal,omitempty" validate:"omitempty,max=10"`
	Status               *string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled boarding departed arrived delayed cancelled"`
}

type UpdateFlightStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=scheduled boarding departed arrived delayed cancelled"`
	DelayMinutes *int   `json:"delay_minutes,omitempty" validate:"omitempty,gte=0"`
}

// FlightSearchRequest is read from the query string.
type FlightSearchRequest struct {
	Origin      string `json:"origin" validate:"omitempty,uuid"`
	Destination string `json:"destination" validate:"omitempty,uuid"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	SeatClass   string `json:"seat_class" validate:"omitempty,oneof=economy business first_class"`
}
