package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "coinloop/internal/adapter/http"
	"coinloop/internal/adapter/usecase"
	"coinloop/internal/db"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the economy HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), a)
		},
	}
}

// serve opens the configured store, optionally seeds it, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down
// the server.
func serve(parent context.Context, a *app) error {
	cfg, logger := a.cfg, a.logger
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := db.OpenStore(ctx, cfg, cfg.Psql.RunMigrations, logger)
	if err != nil {
		logger.Error("store error", slog.Any("error", err))
		return err
	}
	defer closeStore()

	svc := usecase.NewEconomyUseCase(store, logger, usecase.WithDismissAfter(cfg.Economy.NotificationTTL))

	if cfg.Economy.SeedOnStart {
		if err = seed(ctx, svc, cfg.Economy.SeedFile); err != nil && !errors.Is(err, db.ErrAlreadySeeded) {
			logger.Error("seed error", slog.Any("error", err))
			return err
		}
	}

	var auth httpadapter.Authenticator = httpadapter.HeaderAuthenticator{}
	if cfg.Auth.JWTSecret != "" {
		auth = httpadapter.NewJWTAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	} else {
		logger.Warn("AUTH_JWT_SECRET not set; trusting X-User-ID header")
	}

	if cfg.Auth.ServiceToken == "" {
		logger.Warn("AUTH_SERVICE_TOKEN not set; task supply and delivery routes are disabled")
	}

	handler := httpadapter.NewHandler(svc, auth, logger, httpadapter.WithServiceToken(cfg.Auth.ServiceToken))
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
