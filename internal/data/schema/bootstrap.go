package schema

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

// Bootstrapper converges the database schema and seeds an empty catalog.
// Ensure runs the whole sequence at most once per process; main calls it
// before the listener starts so no handler touches the table first.
type Bootstrapper struct {
	db  database.PgxIface
	log *zap.Logger

	once sync.Once
	err  error
}

func NewBootstrapper(db database.PgxIface, log *zap.Logger) *Bootstrapper {
	return &Bootstrapper{
		db:  db,
		log: log.With(zap.String("component", "schema")),
	}
}

// Ensure memoizes the result of the first run. Concurrent callers block on
// the same in-flight initialization and observe the same error.
func (b *Bootstrapper) Ensure(ctx context.Context) error {
	b.once.Do(func() {
		b.err = b.run(ctx)
	})
	return b.err
}

func (b *Bootstrapper) run(ctx context.Context) error {
	if err := b.migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := b.seedIfEmpty(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// migrate applies every migration with a version above the recorded one,
// each inside its own transaction together with its version bump. Re-running
// against a converged database applies nothing.
func (b *Bootstrapper) migrate(ctx context.Context) error {
	_, err := b.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	err = b.db.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		if err := b.apply(ctx, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}

		b.log.Info("Migration applied",
			zap.Int("version", m.version),
			zap.String("name", m.name),
		)
	}

	return nil
}

func (b *Bootstrapper) apply(ctx context.Context, m migration) error {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range m.stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
		return fmt.Errorf("record version: %w", err)
	}

	return tx.Commit(ctx)
}

// seedIfEmpty bulk-inserts the fixed sample catalog when the table holds no
// rows. A seeded table is left untouched, so repeated runs never duplicate.
func (b *Bootstrapper) seedIfEmpty(ctx context.Context) error {
	var count int64
	if err := b.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return fmt.Errorf("count movies: %w", err)
	}
	if count > 0 {
		return nil
	}

	query, args := buildSeedInsert(seedMovies)
	if _, err := b.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert seed rows: %w", err)
	}

	b.log.Info("Seeded sample movies", zap.Int("count", len(seedMovies)))
	return nil
}

// buildSeedInsert produces one multi-row INSERT for the whole catalog.
func buildSeedInsert(movies []seedMovie) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO movies (title, genre, description, poster_url, rating, certificate, language, votes, likes) VALUES `)

	args := make([]any, 0, len(movies)*9)
	for i, m := range movies {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 9
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))
		args = append(args, m.title, m.genre, m.description, m.posterURL,
			m.rating, m.certificate, m.language, m.votes, m.likes)
	}

	return sb.String(), args
}
