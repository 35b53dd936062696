package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

type AirlineResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Logo      *string   `json:"logo"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AirlineToResponse(a *entity.Airline) AirlineResponse {
	return AirlineResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Code:      a.Code,
		Logo:      a.Logo,
		Country:   a.Country,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
