package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"ordering-service/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgres starts a disposable postgres container, applies the
// embedded migrations and returns a connected pool. Cleanup is
// registered on the test.
func SetupPostgres(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ordering_test"),
		postgres.WithUsername("ordering"),
		postgres.WithPassword("ordering"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := db.MigrateDSN(migrateDSN(connStr)); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to connect pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// golang-migrate's pgx v5 driver registers under the pgx5 scheme.
func migrateDSN(connStr string) string {
	return strings.Replace(connStr, "postgres://", "pgx5://", 1)
}
