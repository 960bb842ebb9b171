package domain

import "context"

type Play struct {
	ID          int
	Title       string
	Description string
	Genres      []Genre
	Actors      []Actor
}

// PlayFilters narrows a play listing. Zero values mean "no filter".
type PlayFilters struct {
	Title    string
	GenreIDs []int
	ActorIDs []int
}

type PlayRepository interface {
	Create(ctx context.Context, play *Play) error
	GetAll(ctx context.Context, filters PlayFilters) ([]Play, error)
	GetById(ctx context.Context, id int) (*Play, error)
}
