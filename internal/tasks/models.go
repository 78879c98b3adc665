package tasks

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight maps a priority to its ranking weight. Anything that is not
// high or medium weighs the same as low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

type Stage string

const (
	StageTodo       Stage = "todo"
	StageInProgress Stage = "in progress"
	StageCompleted  Stage = "completed"
)

func (s Stage) IsCompleted() bool {
	return s == StageCompleted
}

// Record is one task as read from the store. Defaults are applied once by
// NewRecord: empty priority becomes low, empty stage becomes todo and a
// missing or unparseable deadline is nil.
type Record struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Stage       Stage      `json:"stage"`
}

// NewRecord builds a Record from loosely typed store values.
func NewRecord(id any, title, description, priority string, deadline any, stage string) Record {
	p := Priority(strings.ToLower(strings.TrimSpace(priority)))
	if p == "" {
		p = PriorityLow
	}
	s := Stage(strings.ToLower(strings.TrimSpace(stage)))
	if s == "" {
		s = StageTodo
	}

	return Record{
		ID:          idString(id),
		Title:       title,
		Description: description,
		Priority:    p,
		Deadline:    DeadlineFrom(deadline),
		Stage:       s,
	}
}

func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// isoLayouts are tried in order by ParseDeadline. Layouts without an offset
// are interpreted in the location passed to ParseDeadlineIn.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDeadline parses an ISO-8601 timestamp. It returns nil when s is
// empty or does not match any supported layout.
func ParseDeadline(s string) *time.Time {
	return ParseDeadlineIn(s, time.Local)
}

func ParseDeadlineIn(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}

// DeadlineFrom accepts whatever a store or decoder produced for the
// deadline column: a time value, an ISO-8601 string, raw bytes or nothing.
func DeadlineFrom(v any) *time.Time {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return nil
		}
		return &d
	case *time.Time:
		if d == nil || d.IsZero() {
			return nil
		}
		t := *d
		return &t
	case string:
		return ParseDeadline(d)
	case []byte:
		return ParseDeadline(string(d))
	default:
		return nil
	}
}
