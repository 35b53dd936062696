package request

type CreateCrewRequest struct {
	AirlineID     *string `json:"airline_id,omitempty" validate:"omitempty,uuid"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	Role          string  `json:"role" validate:"required,oneof=captain first_officer purser flight_attendant engineer"`
	EmployeeID    string  `json:"employee_id" validate:"required,max=30"`
	LicenseNumber *string `json:"license_number,omitempty" validate:"omitempty,max=50"`
	IsAvailable   *bool   `json:"is_available,omitempty"`
}

type UpdateCrewRequest struct {
	AirlineID     *string `json:"airline_id,omitempty" validate:"omitempty,uuid"`
	FirstName     *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Role          *string `json:"role,omitempty" validate:"omitempty,oneof=captain first_officer purser flight_attendant engineer"`
	EmployeeID    *string `json:"employee_id,omitempty" validate:"omitempty,min=1,max=30"`
	LicenseNumber *string `json:"license_number,omitempty" validate:"omitempty,max=50"`
	IsAvailable   *bool   `json:"is_available,omitempty"`
}

type AssignCrewRequest struct {
	FlightID     string `json:"flight_id" validate:"required,uuid"`
	CrewID       string `json:"crew_id" validate:"required,uuid"`
	RoleOnFlight string `json:"role_on_flight" validate:"required,max=30"`
}
