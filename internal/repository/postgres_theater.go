package repository

import (
	"context"
	"errors"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Theater, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, name, city, address, created_at
		FROM theaters
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)
	totalRecords := 0

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(
			&totalRecords,
			&theater.ID,
			&theater.Name,
			&theater.City,
			&theater.Address,
			&theater.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return theaters, metadata, nil
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `
		SELECT id, name, city, address, created_at
		FROM theaters
		WHERE id = $1
	`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.City,
		&theater.Address,
		&theater.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	screens, err := p.retrieveScreens(ctx, id)
	if err != nil {
		return nil, err
	}

	theater.Screens = screens

	return &theater, nil
}

func (p *PostgresTheaterRepository) retrieveScreens(ctx context.Context, theaterId int) ([]domain.Screen, error) {
	query := `
		SELECT name, seat_rows, seat_cols
		FROM theater_screens
		WHERE theater_id = $1
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query, theaterId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screens := make([]domain.Screen, 0)

	for rows.Next() {
		var screen domain.Screen

		err := rows.Scan(&screen.Name, &screen.Rows, &screen.Cols)
		if err != nil {
			return nil, err
		}

		screens = append(screens, screen)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screens, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO theaters (name, city, address)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, theater.Name, theater.City, theater.Address).
			Scan(&theater.ID, &theater.CreatedAt)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(theater.Screens))
		for _, screen := range theater.Screens {
			rows = append(rows, []any{
				theater.ID,
				screen.Name,
				screen.Rows,
				screen.Cols,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"theater_screens"},
			[]string{"theater_id", "name", "seat_rows", "seat_cols"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

// Update changes the theater's descriptive fields only. Screens are left
// untouched because scheduled shows carry their own geometry snapshot.
func (p *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `
		UPDATE theaters
		SET name = $1, city = $2, address = $3
		WHERE id = $4
		RETURNING created_at
	`

	err := p.db.QueryRow(ctx, query, theater.Name, theater.City, theater.Address, theater.ID).
		Scan(&theater.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM theaters WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
