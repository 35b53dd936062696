package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

type BookingFlightResponse struct {
	FlightNumber    string              `json:"flight_number"`
	DepartureTime   time.Time           `json:"departure_time"`
	ArrivalTime     time.Time           `json:"arrival_time"`
	Status          entity.FlightStatus `json:"status"`
	Gate            *string             `json:"gate"`
	Terminal        *string             `json:"terminal"`
	AirlineName     string              `json:"airline_name"`
	AirlineCode     string              `json:"airline_code"`
	OriginCode      string              `json:"origin_code"`
	OriginCity      string              `json:"origin_city"`
	DestinationCode string              `json:"destination_code"`
	DestinationCity string              `json:"destination_city"`
}

type BookingPassengerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type BookingResponse struct {
	ID               string                    `json:"id"`
	BookingReference string                    `json:"booking_reference"`
	FlightID         string                    `json:"flight_id"`
	PassengerID      string                    `json:"passenger_id"`
	SeatClass        entity.SeatClass          `json:"seat_class"`
	SeatNumber       string                    `json:"seat_number"`
	Price            float64                   `json:"price"`
	Status           entity.BookingStatus      `json:"status"`
	PaymentStatus    entity.PaymentStatus      `json:"payment_status"`
	SpecialRequests  *string                   `json:"special_requests"`
	BookedAt         time.Time                 `json:"booked_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	Flight           *BookingFlightResponse    `json:"flight,omitempty"`
	Passenger        *BookingPassengerResponse `json:"passenger,omitempty"`
}

type BookingStatsResponse struct {
	Total          int                 `json:"total"`
	StatusCounts   map[string]int      `json:"status_counts"`
	ClassCounts    entity.SeatCounts   `json:"class_counts"`
	Revenue        float64             `json:"revenue"`
	RevenueByClass entity.ClassAmounts `json:"revenue_by_class"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID.String(),
		BookingReference: b.BookingReference,
		FlightID:         b.FlightID.String(),
		PassengerID:      b.PassengerID.String(),
		SeatClass:        b.SeatClass,
		SeatNumber:       b.SeatNumber,
		Price:            b.Price,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		SpecialRequests:  b.SpecialRequests,
		BookedAt:         b.BookedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func BookingViewToResponse(b *entity.BookingView) BookingResponse {
	resp := BookingToResponse(&b.Booking)
	resp.Flight = &BookingFlightResponse{
		FlightNumber:    b.Flight.FlightNumber,
		DepartureTime:   b.Flight.DepartureTime,
		ArrivalTime:     b.Flight.ArrivalTime,
		Status:          b.Flight.Status,
		Gate:            b.Flight.Gate,
		Terminal:        b.Flight.Terminal,
		AirlineName:     b.Flight.AirlineName,
		AirlineCode:     b.Flight.AirlineCode,
		OriginCode:      b.Flight.OriginCode,
		OriginCity:      b.Flight.OriginCity,
		DestinationCode: b.Flight.DestinationCode,
		DestinationCity: b.Flight.DestinationCity,
	}
	resp.Passenger = &BookingPassengerResponse{
		FirstName: b.Passenger.FirstName,
		LastName:  b.Passenger.LastName,
		Email:     b.Passenger.Email,
		Phone:     b.Passenger.Phone,
	}
	return resp
}

func BookingViewsToResponse(bookings []*entity.BookingView) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingViewToResponse(b)
	}
	return out
}
