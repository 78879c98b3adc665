package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func Connect(driver, connString string) (*sql.DB, error) {
	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

var schemas = map[string]string{
	"postgres": `
		CREATE TABLE IF NOT EXISTS tasks (
			id          SERIAL PRIMARY KEY,
			title       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			priority    TEXT NOT NULL DEFAULT 'low',
			deadline    TIMESTAMPTZ,
			stage       TEXT NOT NULL DEFAULT 'todo',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	// deadline stays TEXT so go-sqlite3 hands back the stored ISO string.
	"sqlite3": `
		CREATE TABLE IF NOT EXISTS tasks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			priority    TEXT NOT NULL DEFAULT 'low',
			deadline    TEXT,
			stage       TEXT NOT NULL DEFAULT 'todo',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
}

// Initialize creates the tasks table if it does not exist yet.
func Initialize(ctx context.Context, db *sql.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
