package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store reads every current task for evaluation.
type Store interface {
	ListTasks(ctx context.Context) ([]Record, error)
}

// SQLStore reads the tasks table through database/sql. The same queries run
// on postgres (lib/pq) and sqlite3 (go-sqlite3).
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) ListTasks(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT
			CAST(id AS TEXT),
			COALESCE(title, ''),
			COALESCE(description, ''),
			COALESCE(priority, ''),
			deadline,
			COALESCE(stage, '')
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	result := []Record{}
	for rows.Next() {
		var (
			id, title, desc string
			priority, stage string
			deadline        any
		)
		if err := rows.Scan(&id, &title, &desc, &priority, &deadline, &stage); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		result = append(result, NewRecord(id, title, desc, priority, deadline, stage))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading tasks: %w", err)
	}

	return result, nil
}

// Insert stores r and returns the id assigned by the database.
func (s *SQLStore) Insert(ctx context.Context, r Record) (string, error) {
	var deadline any
	if r.Deadline != nil {
		deadline = r.Deadline.UTC().Format(time.RFC3339Nano)
	}

	var id string
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO tasks (title, description, priority, deadline, stage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING CAST(id AS TEXT)
	`, r.Title, r.Description, string(r.Priority), deadline, string(r.Stage)).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting task: %w", err)
	}
	return id, nil
}
