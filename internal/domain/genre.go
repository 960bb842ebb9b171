package domain

import "context"

type Genre struct {
	ID   int
	Name string
	// PlayTitles is populated on detail lookups only.
	PlayTitles []string
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetAll(ctx context.Context) ([]Genre, error)
	GetById(ctx context.Context, id int) (*Genre, error)
}
