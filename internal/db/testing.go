package db

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
)

// defaultMigrationsPath resolves the repository's migrations directory
// relative to this file.
func defaultMigrationsPath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("Could not resolve migrations path.")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

func applyMigrations(connString string) {
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath()
	}
	if err := ApplyMigrations(connString, migrationsPath); err != nil {
		panic(err.Error())
	}
}

// CreateTestPool skips the test when no test database is configured.
func CreateTestPool(t testing.TB) *pgxpool.Pool {
	t.Helper()
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	applyMigrations(connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		panic("Could not connect to the database.")
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE restaurant, restaurant_interval RESTART IDENTITY")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
