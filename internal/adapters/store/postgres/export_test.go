package postgres

import "context"

// Exec runs a raw statement. Test fixtures use it to reset tables.
func (d *DB) Exec(ctx context.Context, sql string) error {
	_, err := d.pool.Exec(ctx, sql)
	return err
}
