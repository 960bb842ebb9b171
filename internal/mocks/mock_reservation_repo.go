package mocks

import (
	"context"

	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type MockReservationRepo struct {
	domain.ReservationRepository
	CreateFunc           func(ctx context.Context, userID int, requests []domain.TicketRequest) (*domain.Reservation, error)
	GetAllByUserIdFunc   func(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error)
	GetByIdAndUserIdFunc func(ctx context.Context, reservationID, userID int) (*domain.Reservation, error)
}

func (m *MockReservationRepo) Create(ctx context.Context, userID int, requests []domain.TicketRequest) (*domain.Reservation, error) {
	return m.CreateFunc(ctx, userID, requests)
}

func (m *MockReservationRepo) GetAllByUserId(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {
	return m.GetAllByUserIdFunc(ctx, userID, pagination)
}

func (m *MockReservationRepo) GetByIdAndUserId(ctx context.Context, reservationID, userID int) (*domain.Reservation, error) {
	return m.GetByIdAndUserIdFunc(ctx, reservationID, userID)
}
