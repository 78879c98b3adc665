package tasks

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`
		CREATE TABLE tasks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT,
			description TEXT,
			priority    TEXT,
			deadline    TEXT,
			stage       TEXT
		)`)
	require.NoError(t, err)
	return conn
}

func TestSQLStore_InsertAndList(t *testing.T) {
	ctx := context.Background()
	store := NewSQLStore(openTestDB(t))

	deadline := time.Date(2024, 5, 11, 9, 30, 0, 0, time.UTC)
	id, err := store.Insert(ctx, Record{
		Title:       "Fix login",
		Description: "critical bug",
		Priority:    PriorityHigh,
		Deadline:    &deadline,
		Stage:       StageTodo,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	_, err = store.Insert(ctx, Record{Title: "Tidy desk", Priority: PriorityLow, Stage: StageCompleted})
	require.NoError(t, err)

	records, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "Fix login", records[0].Title)
	assert.Equal(t, PriorityHigh, records[0].Priority)
	require.NotNil(t, records[0].Deadline)
	assert.True(t, deadline.Equal(*records[0].Deadline))

	assert.Nil(t, records[1].Deadline)
	assert.Equal(t, StageCompleted, records[1].Stage)
}

func TestSQLStore_NullColumnsGetDefaults(t *testing.T) {
	conn := openTestDB(t)
	_, err := conn.Exec(`INSERT INTO tasks (title, deadline) VALUES (NULL, 'not a date')`)
	require.NoError(t, err)

	records, err := NewSQLStore(conn).ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "", records[0].Title)
	assert.Equal(t, PriorityLow, records[0].Priority)
	assert.Equal(t, StageTodo, records[0].Stage)
	assert.Nil(t, records[0].Deadline)
}

func TestSQLStore_EmptyTable(t *testing.T) {
	records, err := NewSQLStore(openTestDB(t)).ListTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
