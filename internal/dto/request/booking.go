package request

type CreateBookingRequest struct {
	FlightID        string  `json:"flight_id" validate:"required,uuid"`
	PassengerID     string  `json:"passenger_id" validate:"required,uuid"`
	SeatClass       string  `json:"seat_class" validate:"required,oneof=economy business first_class"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked_in boarded cancelled no_show"`
}
