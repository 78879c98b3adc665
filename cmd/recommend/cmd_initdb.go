package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proman-recommender/internal/config"
	"proman-recommender/internal/db"
	"proman-recommender/internal/tasks"
)

func newInitDBCommand() *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the tasks table and optionally import tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}

			conn, err := db.Connect(cfg.DBDriver, cfg.ConnString())
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", cfg.DBDriver, err)
			}
			defer conn.Close()

			if err := db.Initialize(cmd.Context(), conn, cfg.DBDriver); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tasks table ready (%s)\n", cfg.DBDriver)

			if seed == "" {
				return nil
			}

			records, err := tasks.LoadFile(seed)
			if err != nil {
				return err
			}
			store := tasks.NewSQLStore(conn)
			for _, r := range records {
				if _, err := store.Insert(cmd.Context(), r); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d tasks from %s\n", len(records), seed)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "JSON or YAML task list to import")

	return cmd
}
