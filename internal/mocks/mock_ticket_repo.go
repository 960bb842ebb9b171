package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockTicketRepo struct {
	domain.TicketRepository
	GetAllFunc func(ctx context.Context, pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error)
}

func (m *MockTicketRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}
