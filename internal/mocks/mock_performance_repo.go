package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockPerformanceRepo struct {
	domain.PerformanceRepository
	CreateFunc         func(ctx context.Context, performance *domain.Performance) error
	GetAllFunc         func(ctx context.Context, filters domain.PerformanceFilters) ([]domain.PerformanceSummary, error)
	GetByIdFunc        func(ctx context.Context, id int) (*domain.Performance, error)
	GetTakenPlacesFunc func(ctx context.Context, performanceID int) ([]domain.TakenPlace, error)
	RemainingFunc      func(ctx context.Context, performanceID int) (int, error)
}

func (m *MockPerformanceRepo) Create(ctx context.Context, performance *domain.Performance) error {
	return m.CreateFunc(ctx, performance)
}

func (m *MockPerformanceRepo) GetAll(ctx context.Context, filters domain.PerformanceFilters) ([]domain.PerformanceSummary, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockPerformanceRepo) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPerformanceRepo) GetTakenPlaces(ctx context.Context, performanceID int) ([]domain.TakenPlace, error) {
	return m.GetTakenPlacesFunc(ctx, performanceID)
}

func (m *MockPerformanceRepo) Remaining(ctx context.Context, performanceID int) (int, error) {
	return m.RemainingFunc(ctx, performanceID)
}
