package db_test

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/noteboard/config"
	"noteboard/internal/noteboard/db"
	"noteboard/pkg/logger"
)

const envTestDSN = "NOTEBOARD_TEST_DATABASE_URL"

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("../../../migrations/noteboard")
	require.NoError(t, err)
	return dir
}

func TestNew(t *testing.T) {
	ctx := testContext(t)

	t.Run("unreachable database", func(t *testing.T) {
		cfg := &config.PostgresConfig{
			Host:          "127.0.0.1",
			Port:          1,
			User:          "postgres",
			Password:      "postgres",
			Database:      "noteboard",
			MinConn:       1,
			MaxConn:       2,
			MigrationsDir: migrationsDir(t),
		}

		database, err := db.New(ctx, cfg)

		require.Error(t, err)
		assert.Nil(t, database)
		assert.Contains(t, err.Error(), db.ErrDBMigrations)
	})

	t.Run("live database", func(t *testing.T) {
		dsn := os.Getenv(envTestDSN)
		if dsn == "" {
			t.Skip("skipping test as " + envTestDSN + " is not set")
		}

		u, err := url.Parse(dsn)
		require.NoError(t, err)
		port, err := strconv.Atoi(u.Port())
		require.NoError(t, err)
		password, _ := u.User.Password()

		cfg := &config.PostgresConfig{
			Host:          u.Hostname(),
			Port:          port,
			User:          u.User.Username(),
			Password:      password,
			Database:      u.Path[1:],
			MinConn:       1,
			MaxConn:       2,
			MigrationsDir: migrationsDir(t),
		}

		database, err := db.New(ctx, cfg)
		require.NoError(t, err)
		defer database.Close(ctx)

		require.NotNil(t, database.Pool())
		require.NoError(t, database.Ping(ctx))
	})
}
