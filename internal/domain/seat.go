package domain

import "fmt"

// SeatRangeError reports a single dimension of a seat request that falls
// outside the hall's grid. The permitted range is always [1, Max].
type SeatRangeError struct {
	Field string // "row" or "seat"
	Value int
	Max   int
}

func (e SeatRangeError) Error() string {
	return fmt.Sprintf("%s number must be in available range [1, %d], not %d", e.Field, e.Max, e.Value)
}

// ValidateTicketSeat checks a requested (row, seat) against the hall's grid.
// Both dimensions are always checked, so a request that is bad in both
// reports both violations. This is the single validation path for seats:
// every ticket insertion goes through it.
func ValidateTicketSeat(row, seat int, hall TheatreHall) []SeatRangeError {
	var errs []SeatRangeError

	if seat < 1 || seat > hall.SeatsInRow {
		errs = append(errs, SeatRangeError{Field: "seat", Value: seat, Max: hall.SeatsInRow})
	}

	if row < 1 || row > hall.Rows {
		errs = append(errs, SeatRangeError{Field: "row", Value: row, Max: hall.Rows})
	}

	return errs
}
