package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// MoviesRepository provides read access to the movies table plus the bulk
// insert used for seeding.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `
    id,
    name,
    date,
    score,
    genre,
    overview,
    crew,
    orig_title,
    status,
    orig_lang,
    budget,
    revenue,
    country
`

// Count returns the total number of movies.
func (r *MoviesRepository) Count(ctx context.Context) (int, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return int(total), nil
}

// List returns up to limit movies ordered by id, skipping the first offset rows.
func (r *MoviesRepository) List(ctx context.Context, offset, limit int) ([]domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id ASC OFFSET $1 LIMIT $2`, movieColumns)
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Movie, 0, limit)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		items = append(items, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return items, nil
}

// GetByID fetches a movie by its primary key.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)
	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	return movie, nil
}

// Upsert inserts movies in one batch, skipping rows whose (name, date) already
// exists. It returns the number of rows actually inserted.
func (r *MoviesRepository) Upsert(ctx context.Context, movies []domain.Movie) (int64, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	const query = `
        INSERT INTO movies (name, date, score, genre, overview, crew, orig_title, status, orig_lang, budget, revenue, country)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        ON CONFLICT (name, date) DO NOTHING
    `

	batch := &pgx.Batch{}
	for _, m := range movies {
		batch.Queue(query, m.Name, m.Date, m.Score, m.Genre, m.Overview, m.Crew, m.OrigTitle, m.Status, m.OrigLang, m.Budget, m.Revenue, m.Country)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for i := range movies {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert movie %q: %w", movies[i].Name, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.Date,
		&movie.Score,
		&movie.Genre,
		&movie.Overview,
		&movie.Crew,
		&movie.OrigTitle,
		&movie.Status,
		&movie.OrigLang,
		&movie.Budget,
		&movie.Revenue,
		&movie.Country,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
