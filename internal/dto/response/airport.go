package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

type AirportResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AirportSummaryResponse is the airport embedded in flight payloads.
type AirportSummaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	City     string `json:"city"`
	Timezone string `json:"timezone,omitempty"`
}

func AirportToResponse(a *entity.Airport) AirportResponse {
	return AirportResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Code:      a.Code,
		City:      a.City,
		Country:   a.Country,
		Timezone:  a.Timezone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func AirportSummaryToResponse(a entity.AirportSummary) AirportSummaryResponse {
	return AirportSummaryResponse{
		ID:       a.ID.String(),
		Name:     a.Name,
		Code:     a.Code,
		City:     a.City,
		Timezone: a.Timezone,
	}
}
