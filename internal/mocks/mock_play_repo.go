package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockPlayRepo struct {
	domain.PlayRepository
	CreateFunc  func(ctx context.Context, play *domain.Play) error
	GetAllFunc  func(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Play, error)
}

func (m *MockPlayRepo) Create(ctx context.Context, play *domain.Play) error {
	return m.CreateFunc(ctx, play)
}

func (m *MockPlayRepo) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockPlayRepo) GetById(ctx context.Context, id int) (*domain.Play, error) {
	return m.GetByIdFunc(ctx, id)
}
