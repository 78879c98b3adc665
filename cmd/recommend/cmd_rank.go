package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"proman-recommender/internal/config"
	"proman-recommender/internal/db"
	"proman-recommender/internal/recommend"
	"proman-recommender/internal/tasks"
)

func newRankCommand() *cobra.Command {
	var (
		file    string
		nowFlag string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the top recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if nowFlag != "" {
				t := tasks.ParseDeadline(nowFlag)
				if t == nil {
					return fmt.Errorf("invalid --now %q: want an ISO-8601 timestamp", nowFlag)
				}
				now = *t
			}

			records, err := loadRecords(cmd, file)
			if err != nil {
				return err
			}

			recs := recommend.NewEngine().Rank(records, now)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), recs)
			}
			return renderRecommendations(cmd.OutOrStdout(), recs, len(records))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML task list; the configured store is used when empty")
	cmd.Flags().StringVar(&nowFlag, "now", "", "evaluate as of this ISO-8601 time instead of the current time")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print recommendations as JSON")

	return cmd
}

func loadRecords(cmd *cobra.Command, file string) ([]tasks.Record, error) {
	if file != "" {
		return tasks.LoadFile(file)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	conn, err := db.Connect(cfg.DBDriver, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.DBDriver, err)
	}
	defer conn.Close()

	return tasks.NewSQLStore(conn).ListTasks(cmd.Context())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
