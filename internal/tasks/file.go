package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported task file format")

// fileTask mirrors a task document as exported from the task manager.
// Both "id" and "_id" are accepted.
type fileTask struct {
	ID          any    `json:"id" yaml:"id"`
	MongoID     any    `json:"_id" yaml:"_id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Priority    string `json:"priority" yaml:"priority"`
	Deadline    any    `json:"deadline" yaml:"deadline"`
	Stage       string `json:"stage" yaml:"stage"`
}

// LoadFile reads a JSON or YAML list of tasks.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	var raw []fileTask
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing task file: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, t := range raw {
		id := t.ID
		if id == nil {
			id = t.MongoID
		}
		records = append(records, NewRecord(id, t.Title, t.Description, t.Priority, t.Deadline, t.Stage))
	}
	return records, nil
}
