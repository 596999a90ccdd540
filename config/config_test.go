package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_EmptyValues(t *testing.T) {
	// Empty values either fail to parse or mean "unset", so every key falls back.
	for _, key := range []string{"REDIS_URL", "LOG_LEVEL", "RATE_LIMIT_MAX_REQUESTS"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 60, cfg.RateLimit.MaxRequests)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "tracker.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("EMAIL_WORKER_ENABLED", "false")
	t.Setenv("REPORT_RECIPIENT_EMAIL", "me@example.com")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "tracker.db", cfg.Database.URL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.False(t, cfg.Email.WorkerEnabled)
	assert.Equal(t, "me@example.com", cfg.Report.RecipientEmail)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}
