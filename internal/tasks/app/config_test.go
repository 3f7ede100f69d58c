package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"TASKS_DATABASE_DRIVER", "TASKS_DATABASE_FILE", "TASKS_TOKEN_TTL",
		"TASKS_AUTH_SCHEME", "TASKS_PASSWORD_ALGORITHM", "PORT", "STATS_INTERVAL",
		"ENV", "LOG_SOURCE",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "tasks.db", cfg.DatabaseFile)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "JWT", cfg.AuthScheme)
	require.Equal(t, "argon2id", cfg.PasswordAlgorithm)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Minute, cfg.StatsInterval)
	require.Equal(t, "dev", cfg.Env)
	require.True(t, cfg.LogSource)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TASKS_DATABASE_DRIVER", "Postgres")
	t.Setenv("TASKS_DATABASE_URL", "postgres://u:p@localhost:5432/tasks")
	t.Setenv("TASKS_TOKEN_TTL", "0")
	t.Setenv("TASKS_AUTH_SCHEME", "Bearer")
	t.Setenv("PORT", "9090")
	t.Setenv("STATS_INTERVAL", "5")
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_SOURCE", "")

	cfg := LoadConfig()
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, time.Duration(0), cfg.TokenTTL)
	require.Equal(t, "Bearer", cfg.AuthScheme)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.StatsInterval)
	require.False(t, cfg.LogSource)
	require.NoError(t, cfg.Validate())

	t.Setenv("LOG_SOURCE", "true")
	require.True(t, LoadConfig().LogSource)
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DatabaseDriver:    DriverSQLite,
			DatabaseFile:      "tasks.db",
			AuthScheme:        "JWT",
			PasswordAlgorithm: "argon2id",
			Port:              8080,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres }},
		{"sqlite without file", func(c *Config) { c.DatabaseFile = "" }},
		{"unknown password algorithm", func(c *Config) { c.PasswordAlgorithm = "md5" }},
		{"negative ttl", func(c *Config) { c.TokenTTL = -time.Second }},
		{"scheme with space", func(c *Config) { c.AuthScheme = "J WT" }},
		{"empty scheme", func(c *Config) { c.AuthScheme = "" }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TASKS_TEST_FROM_FILE=file\nTASKS_TEST_PRESET=file\n"), 0o600))

	t.Setenv("TASKS_TEST_PRESET", "env")
	t.Cleanup(func() { _ = os.Unsetenv("TASKS_TEST_FROM_FILE") })

	require.NoError(t, LoadEnvFile(path, true))
	require.Equal(t, "file", os.Getenv("TASKS_TEST_FROM_FILE"))
	require.Equal(t, "env", os.Getenv("TASKS_TEST_PRESET"))

	missing := filepath.Join(dir, "missing.env")
	require.NoError(t, LoadEnvFile(missing, false))
	require.Error(t, LoadEnvFile(missing, true))
}
