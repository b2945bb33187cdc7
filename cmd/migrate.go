package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"coinloop/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closeStore, err := db.OpenStore(cmd.Context(), a.cfg, true, a.logger)
			if err != nil {
				a.logger.Error("migration error", slog.Any("error", err))
				return err
			}
			closeStore()
			return nil
		},
	}
}
