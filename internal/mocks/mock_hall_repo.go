package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockTheatreHallRepo struct {
	domain.TheatreHallRepository
	CreateFunc  func(ctx context.Context, hall *domain.TheatreHall) error
	GetAllFunc  func(ctx context.Context) ([]domain.TheatreHall, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.TheatreHall, error)
}

func (m *MockTheatreHallRepo) Create(ctx context.Context, hall *domain.TheatreHall) error {
	return m.CreateFunc(ctx, hall)
}

func (m *MockTheatreHallRepo) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockTheatreHallRepo) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	return m.GetByIdFunc(ctx, id)
}
