package domain

import (
	"context"
	"time"
)

// Reservation is a user's atomic booking: one or more tickets created
// together. A reservation is immutable once committed; it is either fully
// present with all its tickets or absent entirely.
type Reservation struct {
	ID        int
	Reference string // public UUID used in confirmation mails
	UserID    int
	Tickets   []Ticket
	CreatedAt time.Time
}

// Ticket is a single claimed (row, seat) of one performance. The triple
// (performance, row, seat) is unique system-wide, enforced by the store.
type Ticket struct {
	ID            int
	Row           int
	Seat          int
	PerformanceID int
	// Denormalized performance context for list/detail views.
	PlayTitle string
	HallName  string
	ShowTime  time.Time
}

// TicketRequest is one desired seat in a reservation request.
type TicketRequest struct {
	PerformanceID int
	Row           int
	Seat          int
}

type ReservationRepository interface {
	// Create persists the reservation and all its tickets as one
	// transaction. On any failure nothing is persisted and the specific
	// failure is returned: *TicketValidationError, *TicketPerformanceError
	// or *SeatTakenError.
	Create(ctx context.Context, userID int, requests []TicketRequest) (*Reservation, error)
	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]Reservation, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, reservationID, userID int) (*Reservation, error)
}

type TicketRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Ticket, *Metadata, error)
}
