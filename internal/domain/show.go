package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type ShowFormat string

const (
	Format2D   ShowFormat = "2D"
	Format3D   ShowFormat = "3D"
	FormatIMAX ShowFormat = "IMAX"
	Format4DX  ShowFormat = "4DX"
)

func (f ShowFormat) Valid() bool {
	switch f {
	case Format2D, Format3D, FormatIMAX, Format4DX:
		return true
	}

	return false
}

// Screen describes the seat geometry of one auditorium. Seat labels are a
// row letter followed by a column number, e.g. "A1" or "D12".
type Screen struct {
	Name string
	Rows int
	Cols int
}

// HasSeat reports whether a seat label falls inside the screen's geometry.
// Only the canonical spelling is accepted: a row letter followed by plain
// digits with no sign or leading zero, so one physical seat never has two
// valid labels.
func (s Screen) HasSeat(label string) bool {
	if len(label) < 2 {
		return false
	}

	row := label[0]
	if row < 'A' || int(row-'A') >= s.Rows {
		return false
	}

	if label[1] == '0' {
		return false
	}
	for i := 1; i < len(label); i++ {
		if label[i] < '0' || label[i] > '9' {
			return false
		}
	}

	col, err := strconv.Atoi(label[1:])
	if err != nil {
		return false
	}

	return col >= 1 && col <= s.Cols
}

// ValidateSeats checks every label against the screen geometry and rejects
// duplicates within the request.
func (s Screen) ValidateSeats(seats []string) error {
	seen := make(map[string]bool, len(seats))

	for _, label := range seats {
		if !s.HasSeat(label) {
			return ErrInvalidSeatLabel
		}
		if seen[label] {
			return ErrInvalidSeatLabel
		}
		seen[label] = true
	}

	return nil
}

// Show is one scheduled screening. The screen geometry and ticket price are
// snapshotted onto the show when it is scheduled, so later changes to the
// theater or pricing never affect it.
type Show struct {
	ID          int
	MovieID     int
	TheaterID   int
	Screen      Screen
	Format      ShowFormat
	StartsAt    time.Time
	TicketPrice decimal.Decimal
	BookedSeats []string
	CreatedAt   time.Time
}

// TotalFor computes the charge for a number of seats at the show's current
// ticket price.
func (s *Show) TotalFor(seatCount int) decimal.Decimal {
	return s.TicketPrice.Mul(decimal.NewFromInt(int64(seatCount)))
}

type ShowSummary struct {
	ID          int
	MovieID     int
	MovieTitle  string
	PosterUrl   string
	TheaterID   int
	TheaterName string
	TheaterCity string
	ScreenName  string
	Format      ShowFormat
	StartsAt    time.Time
	TicketPrice decimal.Decimal
}

type ShowFilters struct {
	MovieID  int
	DateFrom time.Time
}

type ShowRepository interface {
	GetAll(ctx context.Context, filters ShowFilters) ([]ShowSummary, error)
	GetById(ctx context.Context, id int) (*Show, error)
	Create(ctx context.Context, show *Show) error
	Delete(ctx context.Context, id int) error
}
