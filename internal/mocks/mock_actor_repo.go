package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockActorRepo struct {
	domain.ActorRepository
	CreateFunc  func(ctx context.Context, actor *domain.Actor) error
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Actor, error)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockActorRepo) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	return m.GetByIdFunc(ctx, id)
}
