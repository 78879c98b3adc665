package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"proman-recommender/internal/recommend"
)

var (
	bold   = color.New(color.Bold)
	yellow = color.New(color.FgYellow)
)

func renderRecommendations(w io.Writer, recs []recommend.Recommendation, total int) error {
	bold.Fprintf(w, "Top %d of %d tasks\n", len(recs), total)
	if len(recs) == 0 {
		yellow.Fprintln(w, "Nothing left to do.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Rank", "ID", "Title", "Priority", "Stage", "Deadline", "Score")
	for i, r := range recs {
		if err := table.Append(
			fmt.Sprintf("%d", i+1),
			r.ID,
			r.Title,
			r.Priority,
			r.Stage,
			r.Deadline,
			fmt.Sprintf("%.1f", r.Score),
		); err != nil {
			return err
		}
	}
	return table.Render()
}
