package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"CLIENTES_APP_NAME",
	"CLIENTES_APP_ENV",
	"CLIENTES_APP_PORT",
	"CLIENTES_DATABASE_HOST",
	"CLIENTES_DATABASE_PORT",
	"CLIENTES_DATABASE_USER",
	"CLIENTES_DATABASE_PASSWORD",
	"CLIENTES_DATABASE_DBNAME",
	"CLIENTES_DATABASE_SSLMODE",
	"CLIENTES_DATABASE_MAX_OPEN_CONNS",
	"CLIENTES_DATABASE_MAX_IDLE_CONNS",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			os.Unsetenv(k)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "cliente-api", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "clientes", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	})

	t.Run("loads values from environment variables with CLIENTES prefix", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CLIENTES_APP_NAME", "test-app")
		t.Setenv("CLIENTES_APP_ENV", "testing")
		t.Setenv("CLIENTES_APP_PORT", "9000")
		t.Setenv("CLIENTES_DATABASE_HOST", "testdb.local")
		t.Setenv("CLIENTES_DATABASE_PORT", "5433")
		t.Setenv("CLIENTES_DATABASE_USER", "testuser")
		t.Setenv("CLIENTES_DATABASE_PASSWORD", "testpass")
		t.Setenv("CLIENTES_DATABASE_DBNAME", "testdb")
		t.Setenv("CLIENTES_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CLIENTES_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("CLIENTES_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CLIENTES_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("requires database.password in production", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CLIENTES_APP_ENV", "production")
		t.Setenv("CLIENTES_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CLIENTES_APP_ENV", "production")
		t.Setenv("CLIENTES_DATABASE_PASSWORD", "secure-password")
		t.Setenv("CLIENTES_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CLIENTES_APP_ENV", "production")
		t.Setenv("CLIENTES_DATABASE_PASSWORD", "secure-password")
		t.Setenv("CLIENTES_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}
