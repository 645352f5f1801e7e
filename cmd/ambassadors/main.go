// Command ambassadors runs the Startup Ambassadors backend and its
// maintenance tasks.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"startupambassadors/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "ambassadors",
	Short:         "Startup Ambassadors Tashkent backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger = config.NewLogger()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(registrationsCmd)
}

// @title			Startup Ambassadors API
// @version		1.0
// @description	Directory, district map, events, blog and submissions for Startup Ambassadors Tashkent.
// @BasePath		/
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
