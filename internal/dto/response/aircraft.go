package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

type AircraftResponse struct {
	ID              string                `json:"id"`
	AirlineID       string                `json:"airline_id"`
	AirlineName     string                `json:"airline_name,omitempty"`
	AirlineCode     string                `json:"airline_code,omitempty"`
	Model           string                `json:"model"`
	Registration    string                `json:"registration"`
	TotalSeats      int                   `json:"total_seats"`
	EconomySeats    int                   `json:"economy_seats"`
	BusinessSeats   int                   `json:"business_seats"`
	FirstClassSeats int                   `json:"first_class_seats"`
	Status          entity.AircraftStatus `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func AircraftToResponse(a *entity.Aircraft) AircraftResponse {
	return AircraftResponse{
		ID:              a.ID.String(),
		AirlineID:       a.AirlineID.String(),
		Model:           a.Model,
		Registration:    a.Registration,
		TotalSeats:      a.TotalSeats,
		EconomySeats:    a.EconomySeats,
		BusinessSeats:   a.BusinessSeats,
		FirstClassSeats: a.FirstClassSeats,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func AircraftViewToResponse(a *entity.AircraftView) AircraftResponse {
	resp := AircraftToResponse(&a.Aircraft)
	resp.AirlineName = a.AirlineName
	resp.AirlineCode = a.AirlineCode
	return resp
}

func AircraftViewsToResponse(fleet []*entity.AircraftView) []AircraftResponse {
	out := make([]AircraftResponse, len(fleet))
	for i, a := range fleet {
		out[i] = AircraftViewToResponse(a)
	}
	return out
}
