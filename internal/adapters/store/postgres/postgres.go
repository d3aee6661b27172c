// Package postgres implements the ordered entity stores on PostgreSQL using
// a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/document"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.OrderedStore[category.Category] = (*Store[category.Category])(nil)
	_ ports.HealthChecker                   = (*DB)(nil)
)

// DB wraps the pool shared by the stores of every kind.
type DB struct {
	pool *pgxpool.Pool
}

// Connect creates a pool for dsn with at most maxConns connections and pings it.
func Connect(ctx context.Context, dsn string, maxConns int) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(min(maxConns, 1<<15))
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Migrate creates the table and index for each kind if missing.
func (d *DB) Migrate(ctx context.Context, kinds ...domain.Kind) error {
	for _, k := range kinds {
		stmts := []string{
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				id         TEXT PRIMARY KEY,
				position   INTEGER NOT NULL,
				body       JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			)`, k.Collection),
			fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_position_idx ON %[1]s (position, created_at, id)`, k.Collection),
		}
		for _, stmt := range stmts {
			if _, err := d.pool.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrating %s: %w", k.Collection, err)
			}
		}
	}
	return nil
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string { return "store" }

// HealthCheck implements ports.HealthChecker.
func (d *DB) HealthCheck(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Close closes every pooled connection.
func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

// Store persists one kind in its own table.
type Store[T domain.Record[T]] struct {
	pool  *pgxpool.Pool
	codec document.Codec[T]
	table string
}

// New returns the store for the kind described by codec.
func New[T domain.Record[T]](d *DB, codec document.Codec[T]) *Store[T] {
	return &Store[T]{pool: d.pool, codec: codec, table: codec.Kind.Collection}
}

// ListOrdered returns all rows ordered by position, creation time and id.
func (s *Store[T]) ListOrdered(ctx context.Context) ([]T, error) {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT id, position, body, created_at FROM %s ORDER BY position, created_at, id`, s.table))
	if err != nil {
		return nil, s.unavailable("list", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		e, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, s.unavailable("list", err)
	}
	return out, nil
}

// Get returns the entity with id.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	row := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT id, position, body, created_at FROM %s WHERE id = $1`, s.table), id)
	e, err := s.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, s.notFound(id)
	}
	return e, err
}

// Append inserts entity after the current last position. A transaction
// scoped advisory lock on the table serialises concurrent appends.
func (s *Store[T]) Append(ctx context.Context, entity T) (T, error) {
	var zero T

	body, err := s.codec.Marshal(entity)
	if err != nil {
		return zero, err
	}

	id := ulid.Make().String()
	created := time.Now().UTC().Truncate(time.Microsecond)

	var position int
	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, s.table); err != nil {
			return err
		}
		return tx.QueryRow(ctx,
			fmt.Sprintf(`INSERT INTO %[1]s (id, position, body, created_at)
				SELECT $1, COALESCE(MAX(position), 0) + 1, $2, $3 FROM %[1]s
				RETURNING position`, s.table),
			id, body, created,
		).Scan(&position)
	})
	if err != nil {
		return zero, s.unavailable("append", err)
	}

	return entity.WithEntityID(id).WithSortOrder(position).WithCreated(created), nil
}

// Update replaces the body of an existing row and returns the stored
// position and creation time.
func (s *Store[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	body, err := s.codec.Marshal(entity)
	if err != nil {
		return zero, err
	}

	var (
		position int
		created  time.Time
	)
	err = s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE %s SET body = $1 WHERE id = $2 RETURNING position, created_at`, s.table),
		body, entity.EntityID(),
	).Scan(&position, &created)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return zero, s.notFound(entity.EntityID())
	case err != nil:
		return zero, s.unavailable("update", err)
	}

	return entity.WithSortOrder(position).WithCreated(created.UTC()), nil
}

// ReassignOrder sends every pair as one batch inside a transaction. A pair
// that matches no row rolls the whole batch back.
func (s *Store[T]) ReassignOrder(ctx context.Context, pairs []ordering.Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE %s SET position = $1 WHERE id = $2`, s.table)

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range pairs {
			batch.Queue(query, p.Order, p.ID)
		}

		results := tx.SendBatch(ctx, batch)
		for _, p := range pairs {
			tag, err := results.Exec()
			if err != nil {
				_ = results.Close()
				return err
			}
			if tag.RowsAffected() != 1 {
				_ = results.Close()
				return fmt.Errorf("%s %s: %w", s.codec.Kind.Name, p.ID, domain.ErrBatchRejected)
			}
		}
		return results.Close()
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrBatchRejected):
		return err
	default:
		return s.unavailable("reassign", err)
	}
}

// Remove deletes the row with id.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table), id)
	if err != nil {
		return s.unavailable("remove", err)
	}
	if tag.RowsAffected() == 0 {
		return s.notFound(id)
	}
	return nil
}

func (s *Store[T]) scan(row pgx.Row) (T, error) {
	var (
		zero     T
		id       string
		position int
		body     []byte
		created  time.Time
	)
	if err := row.Scan(&id, &position, &body, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, err
		}
		return zero, s.unavailable("scan", err)
	}

	e, err := s.codec.Unmarshal(body)
	if err != nil {
		return zero, err
	}
	return e.WithEntityID(id).WithSortOrder(position).WithCreated(created.UTC()), nil
}

func (s *Store[T]) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", s.codec.Kind.Name, id, domain.ErrNotFound)
}

func (s *Store[T]) unavailable(op string, err error) error {
	return fmt.Errorf("postgres %s %s: %w: %w", s.table, op, domain.ErrUnavailable, err)
}
