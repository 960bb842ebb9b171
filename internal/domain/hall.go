package domain

import "context"

// TheatreHall describes the physical seating grid of a hall: Rows rows,
// each with SeatsInRow seats. Both are 1-indexed from the stage.
type TheatreHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

// Capacity returns the total number of seats in the hall.
func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

// SeatInBounds reports whether (row, seat) lies on the hall's grid.
func (h TheatreHall) SeatInBounds(row, seat int) bool {
	return row >= 1 && row <= h.Rows && seat >= 1 && seat <= h.SeatsInRow
}

type TheatreHallRepository interface {
	Create(ctx context.Context, hall *TheatreHall) error
	GetAll(ctx context.Context) ([]TheatreHall, error)
	GetById(ctx context.Context, id int) (*TheatreHall, error)
}
