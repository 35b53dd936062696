package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

type CrewResponse struct {
	ID            string          `json:"id"`
	AirlineID     *string         `json:"airline_id"`
	AirlineName   *string         `json:"airline_name,omitempty"`
	AirlineCode   *string         `json:"airline_code,omitempty"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Role          entity.CrewRole `json:"role"`
	EmployeeID    string          `json:"employee_id"`
	LicenseNumber *string         `json:"license_number"`
	IsAvailable   bool            `json:"is_available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CrewDetailResponse struct {
	CrewResponse
	Assignments []FlightCrewResponse `json:"assignments"`
}

type FlightCrewResponse struct {
	ID            string              `json:"id"`
	FlightID      string              `json:"flight_id"`
	CrewID        string              `json:"crew_id"`
	RoleOnFlight  string              `json:"role_on_flight"`
	FirstName     string              `json:"first_name,omitempty"`
	LastName      string              `json:"last_name,omitempty"`
	Role          entity.CrewRole     `json:"role,omitempty"`
	EmployeeID    string              `json:"employee_id,omitempty"`
	FlightNumber  string              `json:"flight_number,omitempty"`
	DepartureTime *time.Time          `json:"departure_time,omitempty"`
	FlightStatus  entity.FlightStatus `json:"flight_status,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func CrewToResponse(c *entity.Crew) CrewResponse {
	resp := CrewResponse{
		ID:            c.ID.String(),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Role:          c.Role,
		EmployeeID:    c.EmployeeID,
		LicenseNumber: c.LicenseNumber,
		IsAvailable:   c.IsAvailable,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.AirlineID != nil {
		id := c.AirlineID.String()
		resp.AirlineID = &id
	}
	return resp
}

func CrewViewToResponse(c *entity.CrewView) CrewResponse {
	resp := CrewToResponse(&c.Crew)
	resp.AirlineName = c.AirlineName
	resp.AirlineCode = c.AirlineCode
	return resp
}

func CrewViewsToResponse(members []*entity.CrewView) []CrewResponse {
	out := make([]CrewResponse, len(members))
	for i, c := range members {
		out[i] = CrewViewToResponse(c)
	}
	return out
}

func FlightCrewToResponse(a *entity.FlightCrew) FlightCrewResponse {
	return FlightCrewResponse{
		ID:           a.ID.String(),
		FlightID:     a.FlightID.String(),
		CrewID:       a.CrewID.String(),
		RoleOnFlight: a.RoleOnFlight,
		CreatedAt:    a.CreatedAt,
	}
}

func FlightCrewViewToResponse(a *entity.FlightCrewView) FlightCrewResponse {
	resp := FlightCrewToResponse(&a.FlightCrew)
	departure := a.DepartureTime
	resp.FirstName = a.FirstName
	resp.LastName = a.LastName
	resp.Role = a.Role
	resp.EmployeeID = a.EmployeeID
	resp.FlightNumber = a.FlightNumber
	resp.DepartureTime = &departure
	resp.FlightStatus = a.FlightStatus
	return resp
}

func FlightCrewViewsToResponse(assignments []*entity.FlightCrewView) []FlightCrewResponse {
	out := make([]FlightCrewResponse, len(assignments))
	for i, a := range assignments {
		out[i] = FlightCrewViewToResponse(a)
	}
	return out
}
