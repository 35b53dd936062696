package request

type CreateAirportRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Code     string `json:"code" validate:"required,len=3,alphanum"`
	City     string `json:"city" validate:"required,max=100"`
	Country  string `json:"country" validate:"required,max=100"`
	Timezone string `json:"timezone" validate:"required,timezone"`
}

type UpdateAirportRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Code     *string `json:"code,omitempty" validate:"omitempty,len=3,alphanum"`
	City     *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Country  *string `json:"country,omitempty" validate:"omitempty,min=1,max=100"`
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone"`
}
