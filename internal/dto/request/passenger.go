package request

type CreatePassengerRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=100"`
	LastName       string  `json:"last_name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	Phone          string  `json:"phone" validate:"required,max=30"`
	PassportNumber *string `json:"passport_number,omitempty" validate:"omitempty,max=30"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePassengerRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=1,max=30"`
	PassportNumber *string `json:"passport_number,omitempty" validate:"omitempty,max=30"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
