package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), id, title, description, genres, language, duration_mins, poster_url, release_date
		FROM movies
		WHERE ((to_tsvector('english', title) @@ plainto_tsquery('english', $1)
			OR to_tsvector('english', description) @@ plainto_tsquery('english', $1))
			OR $1 = '')
		ORDER BY %s %s
		LIMIT $2 OFFSET $3`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genres,
			&movie.Language,
			&movie.Duration,
			&movie.PosterUrl,
			&movie.ReleaseDate,
		)

		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, description, genres, language, duration_mins, poster_url, release_date, created_at
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genres,
		&movie.Language,
		&movie.Duration,
		&movie.PosterUrl,
		&movie.ReleaseDate,
		&movie.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, description, genres, language, duration_mins, poster_url, release_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Language,
		movie.Duration,
		movie.PosterUrl,
		movie.ReleaseDate,
	).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, description = $2, genres = $3, language = $4, duration_mins = $5, poster_url = $6, release_date = $7
		WHERE id = $8
		RETURNING created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Language,
		movie.Duration,
		movie.PosterUrl,
		movie.ReleaseDate,
		movie.ID,
	).Scan(&movie.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM movies WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
