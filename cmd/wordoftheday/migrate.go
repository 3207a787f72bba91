package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordoftheday/internal/database"
	"github.com/at-ishikawa/wordoftheday/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MySQL table of the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			versions, err := database.Migrate(cmd.Context(), db, schemas.Migrations)
			if err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			if len(versions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations")
				return nil
			}
			for _, version := range versions {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", version)
			}
			return nil
		},
	}
}
