package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockGenreRepo struct {
	domain.GenreRepository
	CreateFunc  func(ctx context.Context, genre *domain.Genre) error
	GetAllFunc  func(ctx context.Context) ([]domain.Genre, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Genre, error)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	return m.CreateFunc(ctx, genre)
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockGenreRepo) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	return m.GetByIdFunc(ctx, id)
}
