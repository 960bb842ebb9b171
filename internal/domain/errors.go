package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrEditConflict          = errors.New("edit conflict")
	ErrSeatAlreadyTaken      = errors.New("seat is already taken")
	ErrPerformanceNotFound   = errors.New("performance not found")
	ErrNoTickets             = errors.New("reservation must contain at least one ticket")
	ErrAvailabilityInvariant = errors.New("negative seat availability")
)

// SeatTakenError identifies the exact (performance, row, seat) triple that
// lost the race for a seat. It unwraps to ErrSeatAlreadyTaken.
type SeatTakenError struct {
	PerformanceID int
	Row           int
	Seat          int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) of performance %d is already taken", e.Row, e.Seat, e.PerformanceID)
}

func (e *SeatTakenError) Unwrap() error {
	return ErrSeatAlreadyTaken
}

// TicketValidationError carries the out-of-range violations of a single
// ticket request, identified by its position in the submitted batch.
type TicketValidationError struct {
	Index      int
	SeatErrors []SeatRangeError
}

func (e *TicketValidationError) Error() string {
	return fmt.Sprintf("ticket %d: %d seat violation(s)", e.Index, len(e.SeatErrors))
}

// TicketPerformanceError identifies a ticket request referencing a
// performance that does not exist. It unwraps to ErrPerformanceNotFound.
type TicketPerformanceError struct {
	Index         int
	PerformanceID int
}

func (e *TicketPerformanceError) Error() string {
	return fmt.Sprintf("ticket %d: performance %d not found", e.Index, e.PerformanceID)
}

func (e *TicketPerformanceError) Unwrap() error {
	return ErrPerformanceNotFound
}
