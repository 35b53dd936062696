package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/seatmap"
)

type FlightAirlineResponse struct {
	Name string  `json:"name"`
	Code string  `json:"code"`
	Logo *string `json:"logo,omitempty"`
}

type FlightAircraftResponse struct {
	ID              string `json:"id"`
	Model           string `json:"model"`
	Registration    string `json:"registration"`
	TotalSeats      int    `json:"total_seats"`
	EconomySeats    int    `json:"economy_seats"`
	BusinessSeats   int    `json:"business_seats"`
	FirstClassSeats int    `json:"first_class_seats"`
}

type FlightResponse struct {
	ID                   string                 `json:"id"`
	FlightNumber         string                 `json:"flight_number"`
	AirlineID            string                 `json:"airline_id"`
	AircraftID           string                 `json:"aircraft_id"`
	OriginAirportID      string                 `json:"origin_airport_id"`
	DestinationAirportID string                 `json:"destination_airport_id"`
	DepartureTime        time.Time              `json:"departure_time"`
	ArrivalTime          time.Time              `json:"arrival_time"`
	DurationMinutes      int                    `json:"duration_minutes"`
	EconomyPrice         float64                `json:"economy_price"`
	BusinessPrice        float64                `json:"business_price"`
	FirstClassPrice      float64                `json:"first_class_price"`
	Gate                 *string                `json:"gate"`
	Terminal             *string                `json:"terminal"`
	Status               entity.FlightStatus    `json:"status"`
	DelayMinutes         int                    `json:"delay_minutes"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
	Airline              FlightAirlineResponse  `json:"airline"`
	Aircraft             FlightAircraftResponse `json:"aircraft"`
	Origin               AirportSummaryResponse `json:"origin"`
	Destination          AirportSummaryResponse `json:"destination"`
	AvailableSeats       *entity.SeatCounts     `json:"available_seats,omitempty"`
}

type FlightDetailResponse struct {
	FlightResponse
	Crew       []FlightCrewResponse `json:"crew"`
	TakenSeats entity.SeatCounts    `json:"taken_seats"`
}

type FlightStatsResponse struct {
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"status_counts"`
	TodayCount   int            `json:"today_count"`
}

type FlightSeatMapResponse struct {
	FlightID     string              `json:"flight_id"`
	FlightNumber string              `json:"flight_number"`
	Sections     []seatmap.Occupancy `json:"sections"`
}

func FlightViewToResponse(f *entity.FlightView) FlightResponse {
	return FlightResponse{
		ID:                   f.ID.String(),
		FlightNumber:         f.FlightNumber,
		AirlineID:            f.AirlineID.String(),
		AircraftID:           f.AircraftID.String(),
		OriginAirportID:      f.OriginAirportID.String(),
		DestinationAirportID: f.DestinationAirportID.String(),
		DepartureTime:        f.DepartureTime,
		ArrivalTime:          f.ArrivalTime,
		DurationMinutes:      f.DurationMinutes,
		EconomyPrice:         f.EconomyPrice,
		BusinessPrice:        f.BusinessPrice,
		FirstClassPrice:      f.FirstClassPrice,
		Gate:                 f.Gate,
		Terminal:             f.Terminal,
		Status:               f.Status,
		DelayMinutes:         f.DelayMinutes,
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
		Airline: FlightAirlineResponse{
			Name: f.AirlineName,
			Code: f.AirlineCode,
			Logo: f.AirlineLogo,
		},
		Aircraft: FlightAircraftResponse{
			ID:              f.Aircraft.ID.String(),
			Model:           f.Aircraft.Model,
			Registration:    f.Aircraft.Registration,
			TotalSeats:      f.Aircraft.TotalSeats,
			EconomySeats:    f.Aircraft.EconomySeats,
			BusinessSeats:   f.Aircraft.BusinessSeats,
			FirstClassSeats: f.Aircraft.FirstClassSeats,
		},
		Origin:      AirportSummaryToResponse(f.Origin),
		Destination: AirportSummaryToResponse(f.Destination),
	}
}

func FlightViewsToResponse(flights []*entity.FlightView) []FlightResponse {
	out := make([]FlightResponse, len(flights))
	for i, f := range flights {
		out[i] = FlightViewToResponse(f)
	}
	return out
}
