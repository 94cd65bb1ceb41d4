package main

import (
	"github.com/spf13/cobra"

	"github.com/Clark-Hu/movie-catalog/db"
	"github.com/Clark-Hu/movie-catalog/internal/store"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(store.Up), string(store.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := store.ParseDirection(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			return rt.store.Migrate(ctx, db.Migrations, "migrations", direction)
		},
	}
}
