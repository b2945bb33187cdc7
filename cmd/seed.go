package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"coinloop/internal/adapter/usecase"
	"coinloop/internal/core/port"
	"coinloop/internal/db"
)

func newSeedCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, tasks and campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := db.OpenStore(cmd.Context(), a.cfg, true, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()
			if file == "" {
				file = a.cfg.Economy.SeedFile
			}
			svc := usecase.NewEconomyUseCase(store, a.logger)
			if err = seed(cmd.Context(), svc, file); err != nil {
				a.logger.Error("seed error", slog.Any("error", err))
				return err
			}
			a.logger.Info("seed applied")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML or YAML seed file (default: built-in demo data)")
	return cmd
}

func seed(ctx context.Context, svc port.EconomyUseCase, file string) error {
	data, err := db.LoadSeed(file)
	if err != nil {
		return err
	}
	return db.Seed(ctx, svc, data)
}
