package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinSeatsPerBooking = 1
	MaxSeatsPerBooking = 6
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the durable record of a completed, paid purchase. TotalAmount
// is captured at purchase time; later ticket price changes never alter it.
type Booking struct {
	ID                int
	Reference         uuid.UUID
	UserID            int
	ShowID            int
	Seats             []string
	TotalAmount       decimal.Decimal
	Status            BookingStatus
	CheckoutSessionID *string
	CreatedAt         time.Time
}

type BookingSummary struct {
	BookingID   int
	Reference   uuid.UUID
	MovieTitle  string
	PosterUrl   string
	TheaterName string
	TheaterCity string
	ShowDate    time.Time
	Seats       []string
	TotalAmount decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
}

type BookingStats struct {
	Revenue  decimal.Decimal
	Bookings int
	Movies   int
	Theaters int
}

type BookingRepository interface {
	// Create writes the booking record on its own. The caller is expected
	// to have claimed the seats already and to release them if this fails.
	Create(ctx context.Context, booking *Booking) error

	// CreateWithSeats claims the booking's seats and writes the booking
	// record in a single transaction. It returns ErrSeatsAlreadyBooked on a
	// seat conflict and ErrDuplicateBooking when a booking already exists
	// for the same checkout session.
	CreateWithSeats(ctx context.Context, booking *Booking) error

	GetById(ctx context.Context, id int) (*Booking, error)
	GetByCheckoutSessionID(ctx context.Context, checkoutSessionID string) (*Booking, error)
	GetSummariesByUserId(ctx context.Context, userId int, pagination Pagination) ([]BookingSummary, *Metadata, error)
	GetAll(ctx context.Context, pagination Pagination) ([]BookingSummary, *Metadata, error)
	GetStats(ctx context.Context) (*BookingStats, error)
}
