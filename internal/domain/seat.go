package domain

import "context"

// SeatRepository is the seat reservation engine: the only component allowed
// to mutate a show's sold-set.
type SeatRepository interface {
	// ClaimSeats marks all of the given seats sold for the show in one
	// atomic storage operation. It returns ErrSeatsAlreadyBooked if any of
	// the seats is already sold, in which case none of them are claimed.
	ClaimSeats(ctx context.Context, showID int, seats []string) error

	// ReleaseSeats removes the given seats from the show's sold-set. It is
	// the compensating action for a claim whose downstream step failed.
	ReleaseSeats(ctx context.Context, showID int, seats []string) error

	// GetBookedSeats returns the show's current sold-set.
	GetBookedSeats(ctx context.Context, showID int) ([]string, error)
}
