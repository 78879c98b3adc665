package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank outstanding tasks and show the five most urgent",
		Long: `recommend ranks outstanding tasks by priority, deadline proximity and
how demanding their text looks, and prints the top five.

Tasks come from a JSON or YAML file (--file) or from the configured store.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to a TOML config file")

	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newInitDBCommand())
	cmd.AddCommand(newTokenCommand())

	return cmd
}
