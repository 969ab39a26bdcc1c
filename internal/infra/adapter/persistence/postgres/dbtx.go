// Package postgres implements the repository interfaces over PostgreSQL
// using database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB the repositories need. Both *sql.DB and the
// circuit-breaker wrapper satisfy it, so main decides whether the persistence
// boundary is guarded.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
