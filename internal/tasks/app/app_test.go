package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "tasks.db"),
		TokenSecretFile:     filepath.Join(dir, "token-secret"),
		TokenTTL:            time.Hour,
		AuthScheme:          "JWT",
		PasswordAlgorithm:   "argon2id",
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		LogOutput:           io.Discard,
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		StatsInterval:       time.Minute,
	}
}

func TestInitTokenKeys(t *testing.T) {
	logger := NewLogger(testConfig(t))

	t.Run("explicit secret", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.TokenSecret = "explicit-secret-0123456789abcdef0123"
		signer, verifier, err := InitTokenKeys(cfg, logger)
		require.NoError(t, err)
		require.NoError(t, signer.Validate())
		require.NotNil(t, verifier)

		_, err = os.Stat(cfg.TokenSecretFile)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("weak explicit secret", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.TokenSecret = "short"
		_, _, err := InitTokenKeys(cfg, logger)
		require.Error(t, err)
	})

	t.Run("generated file survives restart", func(t *testing.T) {
		cfg := testConfig(t)
		_, _, err := InitTokenKeys(cfg, logger)
		require.NoError(t, err)

		first, err := os.ReadFile(cfg.TokenSecretFile)
		require.NoError(t, err)

		_, _, err = InitTokenKeys(cfg, logger)
		require.NoError(t, err)

		second, err := os.ReadFile(cfg.TokenSecretFile)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "oracle"
	_, err := New(cfg)
	require.Error(t, err)
}

func TestApplicationServesAPI(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := tasksdk.NewClient(srv.URL)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	_, err = client.Register(ctx, tasksdk.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "123456"})
	require.NoError(t, err)

	sess, err := client.Login(ctx, "ann@example.com", "123456")
	require.NoError(t, err)

	_, err = sess.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "ship it"})
	require.NoError(t, err)

	// Gauges refresh on demand as well as on the ticker.
	app.statsService.Refresh(ctx)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMigrate(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, Migrate(context.Background(), cfg, NewLogger(cfg)))

	// Running again is a no-op.
	require.NoError(t, Migrate(context.Background(), cfg, NewLogger(cfg)))
}
