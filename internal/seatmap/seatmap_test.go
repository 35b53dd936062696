package seatmap

import (
	"testing"

	"airline-backoffice/internal/data/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSections(t *testing.T) {
	tests := []struct {
		class entity.SeatClass
		first string
		last  string
		size  int
	}{
		{entity.SeatClassFirst, "1A", "4D", 16},
		{entity.SeatClassBusiness, "5A", "9D", 20},
		{entity.SeatClassEconomy, "10A", "40F", 186},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			section, err := Default.Section(tt.class)
			require.NoError(t, err)

			seats := section.Seats()
			assert.Len(t, seats, tt.size)
			assert.Equal(t, tt.size, section.Size())
			assert.Equal(t, tt.first, seats[0])
			assert.Equal(t, tt.last, seats[len(seats)-1])
		})
	}
}

func TestSectionSeatsOrder(t *testing.T) {
	section := Section{Class: entity.SeatClassBusiness, FirstRow: 5, LastRow: 6, Letters: "ABCD"}

	want := []string{"5A", "5B", "5C", "5D", "6A", "6B", "6C", "6D"}
	if diff := cmp.Diff(want, section.Seats()); diff != "" {
		t.Errorf("Seats() mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionContains(t *testing.T) {
	economy := Default[entity.SeatClassEconomy]

	assert.True(t, economy.Contains("10A"))
	assert.True(t, economy.Contains("40F"))
	assert.False(t, economy.Contains("9A"))
	assert.False(t, economy.Contains("41A"))
	assert.False(t, economy.Contains("12G"))
	assert.False(t, economy.Contains("A"))
	assert.False(t, economy.Contains("XYZ"))
	assert.False(t, economy.Contains(""))
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name    string
		class   entity.SeatClass
		taken   []string
		want    string
		wantErr error
	}{
		{
			name:  "empty flight gets the first seat of the section",
			class: entity.SeatClassEconomy,
			want:  "10A",
		},
		{
			name:  "skips taken seats within a row",
			class: entity.SeatClassFirst,
			taken: []string{"1A", "1B"},
			want:  "1C",
		},
		{
			name:  "moves to the next row when a row is full",
			class: entity.SeatClassBusiness,
			taken: []string{"5A", "5B", "5C", "5D"},
			want:  "6A",
		},
		{
			name:  "fills gaps before later seats",
			class: entity.SeatClassFirst,
			taken: []string{"1A", "1C", "2A"},
			want:  "1B",
		},
		{
			name:  "seats from other classes do not block the section",
			class: entity.SeatClassFirst,
			taken: []string{"10A", "5A", "22F"},
			want:  "1A",
		},
		{
			name:    "full section",
			class:   entity.SeatClassFirst,
			taken:   Default[entity.SeatClassFirst].Seats(),
			wantErr: ErrNoSeatAvailable,
		},
		{
			name:    "unknown class",
			class:   entity.SeatClass("premium"),
			wantErr: ErrUnknownClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default.Assign(tt.class, tt.taken)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignIsDeterministic(t *testing.T) {
	taken := []string{"10A", "10B", "10D"}
	first, err := Default.Assign(entity.SeatClassEconomy, taken)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := Default.Assign(entity.SeatClassEconomy, taken)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
	assert.Equal(t, "10C", first)
}

func TestAssignFillsWholeSection(t *testing.T) {
	section := Default[entity.SeatClassBusiness]

	var taken []string
	for i := 0; i < section.Size(); i++ {
		seat, err := Default.Assign(entity.SeatClassBusiness, taken)
		require.NoError(t, err)
		require.True(t, section.Contains(seat), "seat %s outside section", seat)
		require.NotContains(t, taken, seat)
		taken = append(taken, seat)
	}

	if diff := cmp.Diff(section.Seats(), taken); diff != "" {
		t.Errorf("assignment order mismatch (-want +got):\n%s", diff)
	}

	_, err := Default.Assign(entity.SeatClassBusiness, taken)
	assert.ErrorIs(t, err, ErrNoSeatAvailable)
}

func TestOccupancy(t *testing.T) {
	occ, err := Default.Occupancy(entity.SeatClassFirst, []string{"1A", "2d", "12C"})
	require.NoError(t, err)

	assert.Equal(t, 16, occ.Total)
	assert.Equal(t, 2, occ.Taken)
	assert.Equal(t, 14, occ.Free)
	require.Len(t, occ.Rows, 4)

	want := Row{Number: 1, Seats: []Seat{
		{Number: "1A", Taken: true},
		{Number: "1B"},
		{Number: "1C"},
		{Number: "1D"},
	}}
	if diff := cmp.Diff(want, occ.Rows[0]); diff != "" {
		t.Errorf("row 1 mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, occ.Rows[1].Seats[3].Taken)

	_, err = Default.Occupancy(entity.SeatClass("premium"), nil)
	assert.ErrorIs(t, err, ErrUnknownClass)
}
