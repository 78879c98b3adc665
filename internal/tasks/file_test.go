package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "tasks.json", `[
		{"_id": "665f1c", "title": "Deploy", "priority": "high", "deadline": "2024-05-11T09:30:00Z", "stage": "in progress"},
		{"id": 7, "title": "Notes", "deadline": null}
	]`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "665f1c", records[0].ID)
	assert.Equal(t, PriorityHigh, records[0].Priority)
	assert.Equal(t, StageInProgress, records[0].Stage)
	require.NotNil(t, records[0].Deadline)

	assert.Equal(t, "7", records[1].ID)
	assert.Equal(t, PriorityLow, records[1].Priority)
	assert.Nil(t, records[1].Deadline)
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "tasks.yaml", `
- id: a1
  title: Prepare talk
  description: important for the conference
  priority: medium
  deadline: 2024-05-20
  stage: todo
- id: a2
  title: Old task
  stage: completed
`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, PriorityMedium, records[0].Priority)
	require.NotNil(t, records[0].Deadline)
	assert.Equal(t, 20, records[0].Deadline.Day())
	assert.True(t, records[1].Stage.IsCompleted())
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "tasks.csv", "id,title\n")

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
