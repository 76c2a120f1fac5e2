package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mesa-roi/internal/adapter/postgres"
	"mesa-roi/internal/db"
)

var seedValue int64

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return db.Migrate(cfg.Psql.Addr.String(), cfg.Log.New(cmd.ErrOrStderr()))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo performance rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()
		n, err := db.Seed(cmd.Context(), postgres.NewPlanRepository(pool), seedValue)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d performance rows\n", n)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64Var(&seedValue, "seed", 1, "random seed for the generated rows")
}
