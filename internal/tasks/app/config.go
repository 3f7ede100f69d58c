package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./tasks.db)
	DatabaseURL    string // Required for postgres: connection string

	TokenSecret       string        // Optional: HS256 signing secret, at least 32 bytes
	TokenSecretFile   string        // Optional: secret file used when TokenSecret is empty (default: ./token-secret)
	TokenTTL          time.Duration // Optional: token lifetime, 0 disables exp (default: 24h)
	AuthScheme        string        // Optional: Authorization header scheme (default: JWT)
	PasswordAlgorithm string        // Optional: argon2id or bcrypt (default: argon2id)
	PepperFile        string        // Optional: path to file containing pepper for password hashing (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	LogSource           bool          // Record caller file and line (default: true when Env is dev)
	LogOutput           io.Writer     // Log destination, not read from the environment (default: stdout)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	StatsInterval       time.Duration // Gauge refresh interval (default: 1m)
}

func LoadConfig() Config {
	env := getEnvOrDefault("ENV", "dev")
	return Config{
		DatabaseDriver:      strings.ToLower(getEnvOrDefault("TASKS_DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:        getEnvOrDefault("TASKS_DATABASE_FILE", "tasks.db"),
		DatabaseURL:         os.Getenv("TASKS_DATABASE_URL"),
		TokenSecret:         os.Getenv("TASKS_TOKEN_SECRET"),
		TokenSecretFile:     getEnvOrDefault("TASKS_TOKEN_SECRET_FILE", "token-secret"),
		TokenTTL:            getEnvDurationOrDefault("TASKS_TOKEN_TTL", 24*time.Hour),
		AuthScheme:          getEnvOrDefault("TASKS_AUTH_SCHEME", httpx.DefaultAuthScheme),
		PasswordAlgorithm:   getEnvOrDefault("TASKS_PASSWORD_ALGORITHM", string(cryptox.AlgorithmArgon2id)),
		PepperFile:          getEnvOrDefault("TASKS_PEPPER_FILE", "pepper"),
		Env:                 env,
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		LogSource:           getEnvBoolOrDefault("LOG_SOURCE", env == "dev"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		StatsInterval:       getEnvDurationOrDefault("STATS_INTERVAL", time.Minute),
	}
}

// LoadEnvFile seeds the process environment from a .env file. Variables that
// are already set keep their value. A missing file is only an error when
// required is true.
func LoadEnvFile(path string, required bool) error {
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("TASKS_DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("TASKS_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q (use sqlite or postgres)", c.DatabaseDriver)
	}

	if _, err := cryptox.ParseAlgorithm(c.PasswordAlgorithm); err != nil {
		return err
	}
	if c.TokenTTL < 0 {
		return errors.New("TASKS_TOKEN_TTL must not be negative")
	}
	if c.AuthScheme == "" || strings.ContainsAny(c.AuthScheme, " \t") {
		return fmt.Errorf("invalid auth scheme %q", c.AuthScheme)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
