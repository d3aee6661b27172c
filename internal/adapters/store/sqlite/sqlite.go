// Package sqlite implements the ordered entity stores on SQLite through the
// pure-Go modernc.org/sqlite driver. It backs the local profile and the store
// conformance tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/document"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// DB is a SQLite database shared by the stores of every kind.
type DB struct {
	db *sql.DB
}

// Open connects to dsn and verifies the connection. SQLite allows a single
// writer, so the pool is limited to one connection; this also makes the
// read-then-insert in Append atomic.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}
	return &DB{db: db}, nil
}

// Migrate creates the table and index for each kind if missing.
func (d *DB) Migrate(ctx context.Context, kinds ...domain.Kind) error {
	for _, k := range kinds {
		stmts := []string{
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				id         TEXT PRIMARY KEY,
				position   INTEGER NOT NULL,
				body       TEXT NOT NULL,
				created_at INTEGER NOT NULL
			)`, k.Collection),
			fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_position_idx ON %[1]s (position, created_at, id)`, k.Collection),
		}
		for _, stmt := range stmts {
			if _, err := d.db.ExecContext(ctx, stmt); err != nil {
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
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Close releases the connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Compile-time interface checks.
var (
	_ ports.OrderedStore[category.Category] = (*Store[category.Category])(nil)
	_ ports.HealthChecker                   = (*DB)(nil)
)

// Store persists one kind in its own table.
type Store[T domain.Record[T]] struct {
	db    *sql.DB
	codec document.Codec[T]
	table string
	now   func() time.Time
}

// New returns the store for the kind described by codec.
func New[T domain.Record[T]](d *DB, codec document.Codec[T]) *Store[T] {
	return &Store[T]{
		db:    d.db,
		codec: codec,
		table: codec.Kind.Collection,
		now:   time.Now,
	}
}

// ListOrdered returns all rows ordered by position. Ties on position break
// on creation time, then id.
func (s *Store[T]) ListOrdered(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, position, body, created_at FROM %s ORDER BY position, created_at, id`, s.table))
	if err != nil {
		return nil, s.unavailable("list", err)
	}
	defer func() { _ = rows.Close() }()

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
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, position, body, created_at FROM %s WHERE id = ?`, s.table), id)
	e, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, s.notFound(id)
	}
	return e, err
}

// Append inserts entity after the current last position.
func (s *Store[T]) Append(ctx context.Context, entity T) (T, error) {
	body, err := s.codec.Marshal(entity)
	if err != nil {
		var zero T
		return zero, err
	}

	id := ulid.Make().String()
	created := s.now().UTC()

	var position int
	err = s.db.QueryRowContext(ctx,
		fmt.Sprintf(`INSERT INTO %[1]s (id, position, body, created_at)
			SELECT ?, COALESCE(MAX(position), 0) + 1, ?, ? FROM %[1]s
			RETURNING position`, s.table),
		id, string(body), created.UnixNano(),
	).Scan(&position)
	if err != nil {
		var zero T
		return zero, s.unavailable("append", err)
	}

	return entity.WithEntityID(id).WithSortOrder(position).WithCreated(created), nil
}

// Update replaces the body of an existing row. Position and creation time
// are preserved and returned on the entity.
func (s *Store[T]) Update(ctx context.Context, entity T) (T, error) {
	body, err := s.codec.Marshal(entity)
	if err != nil {
		var zero T
		return zero, err
	}

	var (
		position int
		created  int64
	)
	err = s.db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE %s SET body = ? WHERE id = ? RETURNING position, created_at`, s.table),
		string(body), entity.EntityID(),
	).Scan(&position, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		var zero T
		return zero, s.notFound(entity.EntityID())
	case err != nil:
		var zero T
		return zero, s.unavailable("update", err)
	}

	return entity.WithSortOrder(position).WithCreated(time.Unix(0, created).UTC()), nil
}

// ReassignOrder writes every pair in one transaction.
func (s *Store[T]) ReassignOrder(ctx context.Context, pairs []ordering.Pair) (err error) {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.unavailable("reassign", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`UPDATE %s SET position = ? WHERE id = ?`, s.table))
	if err != nil {
		return s.unavailable("reassign", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range pairs {
		res, err := stmt.ExecContext(ctx, p.Order, p.ID)
		if err != nil {
			return s.unavailable("reassign", err)
		}
		if n, err := res.RowsAffected(); err != nil || n != 1 {
			return fmt.Errorf("%s %s: %w", s.codec.Kind.Name, p.ID, domain.ErrBatchRejected)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.unavailable("reassign", err)
	}
	return nil
}

// Remove deletes the row with id.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.table), id)
	if err != nil {
		return s.unavailable("remove", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return s.unavailable("remove", err)
	} else if n == 0 {
		return s.notFound(id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store[T]) scan(row scanner) (T, error) {
	var (
		zero     T
		id, body string
		position int
		created  int64
	)
	if err := row.Scan(&id, &position, &body, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, err
		}
		return zero, s.unavailable("scan", err)
	}

	e, err := s.codec.Unmarshal([]byte(body))
	if err != nil {
		return zero, err
	}
	return e.WithEntityID(id).WithSortOrder(position).WithCreated(time.Unix(0, created).UTC()), nil
}

func (s *Store[T]) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", s.codec.Kind.Name, id, domain.ErrNotFound)
}

func (s *Store[T]) unavailable(op string, err error) error {
	return fmt.Errorf("sqlite %s %s: %w: %w", s.table, op, domain.ErrUnavailable, err)
}
