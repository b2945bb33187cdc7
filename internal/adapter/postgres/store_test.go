package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"coinloop/internal/adapter/postgres"
	"coinloop/internal/adapter/storetest"
	"coinloop/internal/core/port"
	"coinloop/internal/db"
)

// postgresDSN returns COINLOOP_TEST_POSTGRES_DSN when set and otherwise starts a
// throwaway postgres container. The test is skipped only when neither is
// available.
func postgresDSN(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv("COINLOOP_TEST_POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	if testing.Short() {
		t.Skip("postgres container skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("coinloop"),
		tcpostgres.WithUsername("coinloop"),
		tcpostgres.WithPassword("coinloop"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	conn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return conn
}

// TestStore truncates the tables before every case.
func TestStore(t *testing.T) {
	dsn := postgresDSN(t)
	require.NoError(t, db.MigratePostgres(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storetest.Run(t, func(t *testing.T) port.Store {
		_, err := pool.Exec(context.Background(), `TRUNCATE transactions, tasks, campaigns, users`)
		require.NoError(t, err)
		return postgres.NewStore(pool)
	})
}
