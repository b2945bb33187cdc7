package db

import (
	"context"
	"fmt"
	"log/slog"

	"coinloop/internal/adapter/memory"
	"coinloop/internal/adapter/postgres"
	"coinloop/internal/adapter/sqlite"
	"coinloop/internal/config"
	"coinloop/internal/config/configs"
	"coinloop/internal/core/port"
)

// OpenStore builds the store selected by cfg.Store. When migrate is true
// the schema is brought up to date first. The returned func releases the
// underlying connections.
func OpenStore(ctx context.Context, cfg config.Config, migrate bool, logger *slog.Logger) (port.Store, func(), error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	driver, err := cfg.Store.NormalizedDriver()
	if err != nil {
		return nil, nil, err
	}
	switch driver {
	case configs.DriverPostgres:
		if migrate {
			if err = MigratePostgres(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied successfully", slog.String("driver", driver))
		}
		pool, err := NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return postgres.NewStore(pool), pool.Close, nil
	case configs.DriverSQLite:
		conn, err := OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		// sqlite has no separate server, so its schema is always ensured.
		if err = MigrateSQLite(conn); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqlite.NewStore(conn), func() { _ = conn.Close() }, nil
	default:
		logger.Warn("using in-memory store; state is lost on exit")
		return memory.NewStore(), func() {}, nil
	}
}
