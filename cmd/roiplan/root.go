package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mesa-roi/internal/config"
)

// cfg is loaded from the environment before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "roiplan",
	Short: "Campaign ROI scoring and budget reallocation",
	Long: `roiplan scores campaigns by ROI, classifies them against ROI quantiles
and moves budget from the weakest to the strongest campaigns.

Settings are read from the same environment variables as the server
(PLANNER_*, MODEL_*, PSQL_*, LOG_*); flags override them.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.AddCommand(planCmd, migrateCmd, seedCmd)
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}
