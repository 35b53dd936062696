package request

type CreateAircraftRequest struct {
	AirlineID       string `json:"airline_id" validate:"required,uuid"`
	Model           string `json:"model" validate:"required,max=100"`
	Registration    string `json:"registration" validate:"required,max=20"`
	EconomySeats    int    `json:"economy_seats" validate:"gte=0"`
	BusinessSeats   int    `json:"business_seats" validate:"gte=0"`
	FirstClassSeats int    `json:"first_class_seats" validate:"gte=0"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance retired"`
}

type UpdateAircraftRequest struct {
	AirlineID       *string `json:"airline_id,omitempty" validate:"omitempty,uuid"`
	Model           *string `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	Registration    *string `json:"registration,omitempty" validate:"omitempty,min=1,max=20"`
	EconomySeats    *int    `json:"economy_seats,omitempty" validate:"omitempty,gte=0"`
	BusinessSeats   *int    `json:"business_seats,omitempty" validate:"omitempty,gte=0"`
	FirstClassSeats *int    `json:"first_class_seats,omitempty" validate:"omitempty,gte=0"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance retired"`
}

type UpdateAircraftStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active maintenance retired"`
}
