package mocks

import (
	"context"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type MockSeatRepo struct {
	domain.SeatRepository
	ClaimSeatsFunc     func(ctx context.Context, showID int, seats []string) error
	ReleaseSeatsFunc   func(ctx context.Context, showID int, seats []string) error
	GetBookedSeatsFunc func(ctx context.Context, showID int) ([]string, error)
}

func (m *MockSeatRepo) ClaimSeats(ctx context.Context, showID int, seats []string) error {
	return m.ClaimSeatsFunc(ctx, showID, seats)
}

func (m *MockSeatRepo) ReleaseSeats(ctx context.Context, showID int, seats []string) error {
	return m.ReleaseSeatsFunc(ctx, showID, seats)
}

func (m *MockSeatRepo) GetBookedSeats(ctx context.Context, showID int) ([]string, error) {
	return m.GetBookedSeatsFunc(ctx, showID)
}
