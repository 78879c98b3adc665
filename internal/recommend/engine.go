// Package recommend ranks outstanding tasks by a composite urgency score.
package recommend

import (
	"sort"
	"time"

	"proman-recommender/internal/tasks"
)

// DefaultLimit is how many recommendations Rank returns at most.
const DefaultLimit = 5

// DeadlineLayout is the canonical form of Recommendation.Deadline.
const DeadlineLayout = "2006-01-02T15:04:05.999999Z07:00"

// Recommendation is a task enriched with its computed score.
type Recommendation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Deadline    string  `json:"deadline"`
	Stage       string  `json:"stage"`
	Score       float64 `json:"score"`
}

// Engine turns task records into an ordered list of recommendations.
type Engine struct {
	limit int
}

// NewEngine creates an engine returning at most DefaultLimit results.
func NewEngine() *Engine {
	return &Engine{limit: DefaultLimit}
}

// Rank scores every task that is not completed and returns the highest
// scoring ones, best first. Equal scores keep their input order. Records
// are read, never modified.
func (e *Engine) Rank(records []tasks.Record, now time.Time) []Recommendation {
	recs := make([]Recommendation, 0, len(records))
	for _, r := range records {
		if r.Stage.IsCompleted() {
			continue
		}

		deadline := now
		if r.Deadline != nil {
			deadline = *r.Deadline
		}

		recs = append(recs, Recommendation{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Priority:    string(r.Priority),
			Deadline:    deadline.Format(DeadlineLayout),
			Stage:       string(r.Stage),
			Score:       Score(r, deadline, now),
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].Score > recs[b].Score
	})

	if len(recs) > e.limit {
		recs = recs[:e.limit]
	}
	return recs
}

// Score combines priority weight, deadline proximity and text complexity.
// Overdue tasks keep gaining deadline points; tasks ten or more days out
// get none.
func Score(r tasks.Record, deadline, now time.Time) float64 {
	remaining := RemainingDays(deadline, now)

	urgency := 10 - remaining
	if urgency < 0 {
		urgency = 0
	}

	complexity := EstimateComplexity(r.Title + " " + r.Description)
	return float64(r.Priority.Weight()*5+urgency) + complexity
}

// RemainingDays is the number of whole days from now until deadline,
// rounded down, so a deadline one hour ago is -1.
func RemainingDays(deadline, now time.Time) int {
	const day = 24 * time.Hour
	d := deadline.Sub(now)
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}
