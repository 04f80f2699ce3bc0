package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) GetAll(ctx context.Context, filters domain.ShowFilters) ([]domain.ShowSummary, error) {
	query := `
		SELECT
			s.id,
			m.id,
			m.title,
			m.poster_url,
			t.id,
			t.name,
			t.city,
			s.screen_name,
			s.format,
			s.starts_at,
			s.ticket_price
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2::timestamptz IS NULL OR s.starts_at >= $2)
		ORDER BY s.starts_at
	`

	var dateFrom *time.Time
	if !filters.DateFrom.IsZero() {
		dateFrom = &filters.DateFrom
	}

	rows, err := p.db.Query(ctx, query, filters.MovieID, dateFrom)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.ShowSummary, 0)

	for rows.Next() {
		var show domain.ShowSummary

		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.MovieTitle,
			&show.PosterUrl,
			&show.TheaterID,
			&show.TheaterName,
			&show.TheaterCity,
			&show.ScreenName,
			&show.Format,
			&show.StartsAt,
			&show.TicketPrice,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT
			id,
			movie_id,
			theater_id,
			screen_name,
			seat_rows,
			seat_cols,
			format,
			starts_at,
			ticket_price,
			created_at
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.Screen.Name,
		&show.Screen.Rows,
		&show.Screen.Cols,
		&show.Format,
		&show.StartsAt,
		&show.TicketPrice,
		&show.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	bookedSeats, err := p.retrieveBookedSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	show.BookedSeats = bookedSeats

	return &show, nil
}

func (p *PostgresShowRepository) retrieveBookedSeats(ctx context.Context, showID int) ([]string, error) {
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

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, theater_id, screen_name, seat_rows, seat_cols, format, starts_at, ticket_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		show.MovieID,
		show.TheaterID,
		show.Screen.Name,
		show.Screen.Rows,
		show.Screen.Cols,
		show.Format,
		show.StartsAt,
		show.TicketPrice,
	).Scan(&show.ID, &show.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateShowSlot
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM shows WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
