// Package seatmap assigns seat numbers from the fixed cabin layout. Each seat
// class owns a contiguous block of rows; a seat number is the row followed by
// a letter, e.g. "12C".
package seatmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"airline-backoffice/internal/data/entity"
)

var (
	ErrNoSeatAvailable = errors.New("no seat available in section")
	ErrUnknownClass    = errors.New("unknown seat class")
)

// Section is the block of rows reserved for one seat class.
type Section struct {
	Class    entity.SeatClass
	FirstRow int
	LastRow  int
	Letters  string
}

// Map holds one section per seat class.
type Map map[entity.SeatClass]Section

// Default is the layout every aircraft is booked against.
var Default = Map{
	entity.SeatClassFirst:    {Class: entity.SeatClassFirst, FirstRow: 1, LastRow: 4, Letters: "ABCD"},
	entity.SeatClassBusiness: {Class: entity.SeatClassBusiness, FirstRow: 5, LastRow: 9, Letters: "ABCD"},
	entity.SeatClassEconomy:  {Class: entity.SeatClassEconomy, FirstRow: 10, LastRow: 40, Letters: "ABCDEF"},
}

// Size is the number of seats in the section.
func (s Section) Size() int {
	if s.LastRow < s.FirstRow {
		return 0
	}
	return (s.LastRow - s.FirstRow + 1) * len(s.Letters)
}

// Seats lists the section in scan order: row by row, then letter by letter.
func (s Section) Seats() []string {
	seats := make([]string, 0, s.Size())
	for row := s.FirstRow; row <= s.LastRow; row++ {
		for _, letter := range s.Letters {
			seats = append(seats, seatNumber(row, letter))
		}
	}
	return seats
}

// Contains reports whether seat lies inside the section.
func (s Section) Contains(seat string) bool {
	row, letter, ok := parseSeat(seat)
	if !ok {
		return false
	}
	return row >= s.FirstRow && row <= s.LastRow && strings.ContainsRune(s.Letters, letter)
}

func (m Map) Section(class entity.SeatClass) (Section, error) {
	s, ok := m[class]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	return s, nil
}

// Assign returns the first seat of the class section that is not in taken.
// taken may hold seats of any class; only those inside the section matter.
func (m Map) Assign(class entity.SeatClass, taken []string) (string, error) {
	section, err := m.Section(class)
	if err != nil {
		return "", err
	}

	held := toSet(taken)
	for row := section.FirstRow; row <= section.LastRow; row++ {
		for _, letter := range section.Letters {
			seat := seatNumber(row, letter)
			if _, ok := held[seat]; !ok {
				return seat, nil
			}
		}
	}

	return "", ErrNoSeatAvailable
}

// Seat is one position in an occupancy view.
type Seat struct {
	Number string `json:"number"`
	Taken  bool   `json:"taken"`
}

// Row groups the seats of one cabin row.
type Row struct {
	Number int    `json:"number"`
	Seats  []Seat `json:"seats"`
}

// Occupancy is the state of every seat in one section.
type Occupancy struct {
	Class entity.SeatClass `json:"seat_class"`
	Total int              `json:"total"`
	Taken int              `json:"taken"`
	Free  int              `json:"free"`
	Rows  []Row            `json:"rows"`
}

func (m Map) Occupancy(class entity.SeatClass, taken []string) (Occupancy, error) {
	section, err := m.Section(class)
	if err != nil {
		return Occupancy{}, err
	}

	held := toSet(taken)
	occ := Occupancy{
		Class: class,
		Total: section.Size(),
		Rows:  make([]Row, 0, section.LastRow-section.FirstRow+1),
	}
	for row := section.FirstRow; row <= section.LastRow; row++ {
		r := Row{Number: row, Seats: make([]Seat, 0, len(section.Letters))}
		for _, letter := range section.Letters {
			seat := seatNumber(row, letter)
			_, isTaken := held[seat]
			if isTaken {
				occ.Taken++
			}
			r.Seats = append(r.Seats, Seat{Number: seat, Taken: isTaken})
		}
		occ.Rows = append(occ.Rows, r)
	}
	occ.Free = occ.Total - occ.Taken

	return occ, nil
}

func seatNumber(row int, letter rune) string {
	return strconv.Itoa(row) + string(letter)
}

func parseSeat(seat string) (int, rune, bool) {
	if len(seat) < 2 {
		return 0, 0, false
	}
	letter := rune(seat[len(seat)-1])
	row, err := strconv.Atoi(seat[:len(seat)-1])
	if err != nil || row <= 0 {
		return 0, 0, false
	}
	return row, letter, true
}

func toSet(seats []string) map[string]struct{} {
	set := make(map[string]struct{}, len(seats))
	for _, s := range seats {
		set[strings.ToUpper(strings.TrimSpace(s))] = struct{}{}
	}
	return set
}
