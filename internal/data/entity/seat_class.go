package entity

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "economy"
	SeatClassBusiness SeatClass = "business"
	SeatClassFirst    SeatClass = "first_class"
)

// SeatClasses lists every class in cabin order, front to back.
var SeatClasses = []SeatClass{SeatClassFirst, SeatClassBusiness, SeatClassEconomy}

func (c SeatClass) Valid() bool {
	switch c {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirst:
		return true
	}
	return false
}

// SeatCounts holds one integer per seat class.
type SeatCounts struct {
	Economy    int `json:"economy"`
	Business   int `json:"business"`
	FirstClass int `json:"first_class"`
}

func (s SeatCounts) Get(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return s.Economy
	case SeatClassBusiness:
		return s.Business
	case SeatClassFirst:
		return s.FirstClass
	}
	return 0
}

func (s *SeatCounts) Add(class SeatClass, n int) {
	switch class {
	case SeatClassEconomy:
		s.Economy += n
	case SeatClassBusiness:
		s.Business += n
	case SeatClassFirst:
		s.FirstClass += n
	}
}

// Sub returns s minus other, class by class.
func (s SeatCounts) Sub(other SeatCounts) SeatCounts {
	return SeatCounts{
		Economy:    s.Economy - other.Economy,
		Business:   s.Business - other.Business,
		FirstClass: s.FirstClass - other.FirstClass,
	}
}

// ClassAmounts holds one money amount per seat class.
type ClassAmounts struct {
	Economy    float64 `json:"economy"`
	Business   float64 `json:"business"`
	FirstClass float64 `json:"first_class"`
}

func (a *ClassAmounts) Add(class SeatClass, amount float64) {
	switch class {
	case SeatClassEconomy:
		a.Economy += amount
	case SeatClassBusiness:
		a.Business += amount
	case SeatClassFirst:
		a.FirstClass += amount
	}
}
