package domain

import "context"

type Actor struct {
	ID        int
	FirstName string
	LastName  string
	// PlayTitles is populated on detail lookups only.
	PlayTitles []string
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type ActorRepository interface {
	Create(ctx context.Context, actor *Actor) error
	GetAll(ctx context.Context, pagination Pagination) ([]Actor, *Metadata, error)
	GetById(ctx context.Context, id int) (*Actor, error)
}
