package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"coinloop/internal/config"
)

// main is the entry point of coinloop. Without a subcommand it serves the
// HTTP API.
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs after PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "coinloop",
		Short:         "Credit economy engine for earners and advertisers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from environment variables.
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
			return nil
		},
	}
	serve := newServeCmd(a)
	root.RunE = serve.RunE
	root.AddCommand(serve, newMigrateCmd(a), newSeedCmd(a), newStatementCmd(a))
	return root
}
