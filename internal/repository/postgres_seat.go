package repository

import (
	"context"
	"errors"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// ClaimSeats appends the seats to the show's sold-set as one INSERT. The
// primary key on (show_id, seat_label) makes the claim atomic: if any seat
// is already sold the whole statement aborts and nothing is claimed. There
// is deliberately no availability pre-check here; the constraint is the
// only race-free arbiter.
func (p *PostgresSeatRepository) ClaimSeats(ctx context.Context, showID int, seats []string) error {
	query := `
		INSERT INTO booked_seats (show_id, seat_label)
		SELECT $1, unnest($2::text[])
	`

	_, err := p.db.Exec(ctx, query, showID, seats)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatsAlreadyBooked
		}

		return err
	}

	return nil
}

func (p *PostgresSeatRepository) ReleaseSeats(ctx context.Context, showID int, seats []string) error {
	query := `
		DELETE FROM booked_seats
		WHERE show_id = $1 AND seat_label = ANY($2::text[])
	`

	_, err := p.db.Exec(ctx, query, showID, seats)
	return err
}

func (p *PostgresSeatRepository) GetBookedSeats(ctx context.Context, showID int) ([]string, error) {
	query := `
		SELECT seat_label
		FROM booked_seats
		WHERE show_id = $1
		ORDER BY seat_label
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]string, 0)

	for rows.Next() {
		var seat string

		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
