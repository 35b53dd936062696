package response

import (
	"time"

	"airline-backoffice/internal/data/entity"
)

const dateLayout = "2006-01-02"

type PassengerResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PassportNumber *string   `json:"passport_number"`
	Nationality    *string   `json:"nationality"`
	DateOfBirth    *string   `json:"date_of_birth"`
	BookingCount   *int      `json:"booking_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PassengerDetailResponse struct {
	PassengerResponse
	Bookings []BookingResponse `json:"bookings"`
}

func PassengerToResponse(p *entity.Passenger) PassengerResponse {
	resp := PassengerResponse{
		ID:             p.ID.String(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		PassportNumber: p.PassportNumber,
		Nationality:    p.Nationality,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}

func PassengerViewToResponse(p *entity.PassengerView) PassengerResponse {
	resp := PassengerToResponse(&p.Passenger)
	count := p.BookingCount
	resp.BookingCount = &count
	return resp
}

func PassengersToResponse(passengers []*entity.Passenger) []PassengerResponse {
	out := make([]PassengerResponse, len(passengers))
	for i, p := range passengers {
		out[i] = PassengerToResponse(p)
	}
	return out
}
