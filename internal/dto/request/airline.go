package request

type CreateAirlineRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Code     string  `json:"code" validate:"required,min=2,max=3,alphanum"`
	Logo     *string `json:"logo,omitempty" validate:"omitempty,max=500"`
	Country  string  `json:"country" validate:"required,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type UpdateAirlineRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Code     *string `json:"code,omitempty" validate:"omitempty,min=2,max=3,alphanum"`
	Logo     *string `json:"logo,omitempty" validate:"omitempty,max=500"`
	Country  *string `json:"country,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}
