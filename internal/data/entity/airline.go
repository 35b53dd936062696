package entity

type Airline struct {
	Base
	Name     string  `db:"name"`
	Code     string  `db:"code"`
	Logo     *string `db:"logo"`
	Country  string  `db:"country"`
	IsActive bool    `db:"is_active"`
}
