package domain

import (
	"context"
	"time"
)

// Performance is a scheduled showing of a play in a theatre hall.
type Performance struct {
	ID       int
	ShowTime time.Time
	Play     Play
	Hall     TheatreHall
}

// PerformanceSummary is a performance annotated for listings with the
// number of seats still available: hall capacity minus issued tickets,
// computed in a single aggregate query so the count is never partial.
type PerformanceSummary struct {
	ID               int
	ShowTime         time.Time
	PlayTitle        string
	HallName         string
	HallCapacity     int
	TicketsAvailable int
}

// TakenPlace is a (row, seat) already claimed by a ticket of a performance.
type TakenPlace struct {
	Row  int
	Seat int
}

// PerformanceFilters narrows a performance listing. A zero Date means
// "any date"; an empty PlayIDs means "any play"; a zero HallID means
// "any hall".
type PerformanceFilters struct {
	PlayIDs []int
	Date    time.Time
	HallID  int
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *Performance) error
	GetAll(ctx context.Context, filters PerformanceFilters) ([]PerformanceSummary, error)
	GetById(ctx context.Context, id int) (*Performance, error)
	GetTakenPlaces(ctx context.Context, performanceID int) ([]TakenPlace, error)
	// Remaining returns hall capacity minus issued tickets as one
	// consistent read. A negative count reports ErrAvailabilityInvariant.
	Remaining(ctx context.Context, performanceID int) (int, error)
}
