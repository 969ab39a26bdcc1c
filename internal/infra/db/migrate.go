package db

import "database/sql"

// MigrateUp creates the schema if it does not exist.
// Both required text columns carry NOT NULL so the database backs the
// non-empty invariants the use case layer enforces.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id         SERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id         SERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	return nil
}

// MigrateDown drops the schema in reverse order of creation.
// Use with caution: this deletes all data in both tables.
func MigrateDown(pool *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	} {
		if _, err := pool.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
