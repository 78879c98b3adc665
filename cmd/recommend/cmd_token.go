package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"proman-recommender/internal/auth"
	"proman-recommender/internal/config"
)

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the /recommend endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("no jwt secret configured (set JWT_SECRET or jwt_secret)")
			}

			token, err := auth.GenerateToken([]byte(cfg.JWTSecret), subject, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "proman-client", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")

	return cmd
}
