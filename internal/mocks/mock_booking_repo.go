package mocks

import (
	"context"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc                 func(ctx context.Context, booking *domain.Booking) error
	CreateWithSeatsFunc        func(ctx context.Context, booking *domain.Booking) error
	GetByIdFunc                func(ctx context.Context, id int) (*domain.Booking, error)
	GetByCheckoutSessionIDFunc func(ctx context.Context, checkoutSessionID string) (*domain.Booking, error)
	GetSummariesByUserIdFunc   func(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error)
	GetAllFunc                 func(ctx context.Context, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error)
	GetStatsFunc               func(ctx context.Context) (*domain.BookingStats, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) CreateWithSeats(ctx context.Context, booking *domain.Booking) error {
	return m.CreateWithSeatsFunc(ctx, booking)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetByCheckoutSessionID(ctx context.Context, checkoutSessionID string) (*domain.Booking, error) {
	return m.GetByCheckoutSessionIDFunc(ctx, checkoutSessionID)
}

func (m *MockBookingRepo) GetSummariesByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	return m.GetSummariesByUserIdFunc(ctx, userId, pagination)
}

func (m *MockBookingRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}

func (m *MockBookingRepo) GetStats(ctx context.Context) (*domain.BookingStats, error) {
	return m.GetStatsFunc(ctx)
}
