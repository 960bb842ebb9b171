package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheatreHallCapacity(t *testing.T) {
	tests := []struct {
		name string
		hall TheatreHall
		want int
	}{
		{name: "standard hall", hall: TheatreHall{Rows: 20, SeatsInRow: 20}, want: 400},
		{name: "single seat", hall: TheatreHall{Rows: 1, SeatsInRow: 1}, want: 1},
		{name: "wide hall", hall: TheatreHall{Rows: 2, SeatsInRow: 50}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hall.Capacity())
		})
	}
}

func TestValidateTicketSeat(t *testing.T) {
	hall := TheatreHall{ID: 1, Name: "Main Stage", Rows: 20, SeatsInRow: 20}

	t.Run("every seat on the grid is valid", func(t *testing.T) {
		for row := 1; row <= hall.Rows; row++ {
			for seat := 1; seat <= hall.SeatsInRow; seat++ {
				require.Empty(t, ValidateTicketSeat(row, seat, hall))
				require.True(t, hall.SeatInBounds(row, seat))
			}
		}
	})

	tests := []struct {
		name       string
		row        int
		seat       int
		wantFields []string
		wantMax    map[string]int
	}{
		{
			name:       "row beyond last row",
			row:        21,
			seat:       1,
			wantFields: []string{"row"},
			wantMax:    map[string]int{"row": 20},
		},
		{
			name:       "row zero",
			row:        0,
			seat:       5,
			wantFields: []string{"row"},
			wantMax:    map[string]int{"row": 20},
		},
		{
			name:       "seat beyond last seat",
			row:        3,
			seat:       21,
			wantFields: []string{"seat"},
			wantMax:    map[string]int{"seat": 20},
		},
		{
			name:       "seat negative",
			row:        3,
			seat:       -1,
			wantFields: []string{"seat"},
			wantMax:    map[string]int{"seat": 20},
		},
		{
			name:       "both row and seat out of range",
			row:        999,
			seat:       0,
			wantFields: []string{"seat", "row"},
			wantMax:    map[string]int{"row": 20, "seat": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTicketSeat(tt.row, tt.seat, hall)
			require.Len(t, errs, len(tt.wantFields))

			for i, field := range tt.wantFields {
				assert.Equal(t, field, errs[i].Field)
				assert.Equal(t, tt.wantMax[field], errs[i].Max)
			}

			assert.False(t, hall.SeatInBounds(tt.row, tt.seat))
		})
	}
}

func TestSeatRangeErrorMessage(t *testing.T) {
	err := SeatRangeError{Field: "row", Value: 21, Max: 20}
	assert.Equal(t, "row number must be in available range [1, 20], not 21", err.Error())
}
