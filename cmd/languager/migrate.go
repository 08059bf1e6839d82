package main

import (
	"fmt"

	"languager/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dir := database.Up
	if len(args) == 1 {
		dir = database.Direction(args[0])
	}

	db, err := database.Connect(cmd.Context(), cfg.DSN(), database.DefaultRetryPolicy, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	return database.Migrate(db, cfg.Database.MigrationsPath, dir, log)
}
