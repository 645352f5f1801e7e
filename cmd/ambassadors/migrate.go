package main

import (
	"github.com/spf13/cobra"

	"startupambassadors/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Create every table and index the API needs. Statements are idempotent,
so running migrate against an up-to-date database changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := postgres.Open(cmd.Context(), cfg.DBUrl)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("schema applied")
		return nil
	},
}
