package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (*entity.Movie, error)
}

// updatableColumns is the allow-list for partial updates. The SET clause is
// built by iterating this list, never from request keys.
var updatableColumns = []string{
	"title", "genre", "description", "poster_url", "rating",
	"certificate", "language", "votes", "likes",
}

const movieColumns = `id, title, genre, description, poster_url, rating, certificate, language, votes, likes, created_at`

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var m entity.Movie
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Genre,
		&m.Description,
		&m.PosterURL,
		&m.Rating,
		&m.Certificate,
		&m.Language,
		&m.Votes,
		&m.Likes,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) (int64, error) {
	query := `
		INSERT INTO movies (title, genre, description, poster_url, rating, certificate, language, votes, likes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Description,
		movie.PosterURL,
		movie.Rating,
		movie.Certificate,
		movie.Language,
		movie.Votes,
		movie.Likes,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return 0, fmt.Errorf("failed to create movie: %w", err)
	}

	return id, nil
}

// Update applies only the columns present in fields, in allow-list order.
// Returns false when no row matched the id.
func (r *movieRepository) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	query, args := buildUpdateQuery(id, fields)
	if query == "" {
		return false, fmt.Errorf("no updatable fields")
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("failed to update movie: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// buildUpdateQuery returns "" when fields names no allow-listed column.
func buildUpdateQuery(id int64, fields map[string]any) (string, []any) {
	var sets []string
	args := []any{id}

	for _, col := range updatableColumns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(sets) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("UPDATE movies SET ")
	sb.WriteString(strings.Join(sets, ", "))
	sb.WriteString(" WHERE id = $1")

	return sb.String(), args
}

// Delete removes the row and returns its prior snapshot in one statement,
// or nil when the id does not exist.
func (r *movieRepository) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `DELETE FROM movies WHERE id = $1 RETURNING ` + movieColumns

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return movie, nil
}
