package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := p.insertBooking(ctx, p.db, booking)
	if err != nil {
		return mapBookingError(err)
	}

	return nil
}

// CreateWithSeats claims the booking's seats and writes the booking record
// in one transaction, so a failure at either step leaves the sold-set and
// the booking store consistent without a compensating release.
func (p *PostgresBookingRepository) CreateWithSeats(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO booked_seats (show_id, seat_label)
			SELECT $1, unnest($2::text[])
		`

		_, err := tx.Exec(ctx, query, booking.ShowID, booking.Seats)
		if err != nil {
			return err
		}

		return p.insertBooking(ctx, tx, booking)
	})

	if err != nil {
		return mapBookingError(err)
	}

	return nil
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (p *PostgresBookingRepository) insertBooking(ctx context.Context, q queryer, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (reference, user_id, show_id, seats, total_amount, status, checkout_session_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return q.QueryRow(
		ctx,
		query,
		booking.Reference,
		booking.UserID,
		booking.ShowID,
		booking.Seats,
		booking.TotalAmount,
		booking.Status,
		booking.CheckoutSessionID,
	).Scan(&booking.ID, &booking.CreatedAt)
}

// mapBookingError translates unique violations into domain errors. The seat
// claim and the checkout-session dedup both rely on constraints, so the
// constraint name decides which invariant was hit.
func mapBookingError(err error) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "checkout_session") {
			return domain.ErrDuplicateBooking
		}

		return domain.ErrSeatsAlreadyBooked
	}

	return err
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, reference, user_id, show_id, seats, total_amount, status, checkout_session_id, created_at
		FROM bookings
		WHERE id = $1
	`

	return p.scanBooking(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresBookingRepository) GetByCheckoutSessionID(ctx context.Context, checkoutSessionID string) (*domain.Booking, error) {
	query := `
		SELECT id, reference, user_id, show_id, seats, total_amount, status, checkout_session_id, created_at
		FROM bookings
		WHERE checkout_session_id = $1
	`

	return p.scanBooking(p.db.QueryRow(ctx, query, checkoutSessionID))
}

func (p *PostgresBookingRepository) scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.ShowID,
		&booking.Seats,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CheckoutSessionID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.reference,
			m.title,
			m.poster_url,
			t.name,
			t.city,
			s.starts_at,
			b.seats,
			b.total_amount,
			b.status,
			b.created_at
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}

	return p.scanSummaries(rows, pagination)
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.reference,
			m.title,
			m.poster_url,
			t.name,
			t.city,
			s.starts_at,
			b.seats,
			b.total_amount,
			b.status,
			b.created_at
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}

	return p.scanSummaries(rows, pagination)
}

func (p *PostgresBookingRepository) scanSummaries(
	rows pgx.Rows,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.MovieTitle,
			&booking.PosterUrl,
			&booking.TheaterName,
			&booking.TheaterCity,
			&booking.ShowDate,
			&booking.Seats,
			&booking.TotalAmount,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) GetStats(ctx context.Context) (*domain.BookingStats, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM bookings WHERE status = 'confirmed'), 0),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM movies),
			(SELECT COUNT(*) FROM theaters)
	`

	var stats domain.BookingStats

	err := p.db.QueryRow(ctx, query).Scan(
		&stats.Revenue,
		&stats.Bookings,
		&stats.Movies,
		&stats.Theaters,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
