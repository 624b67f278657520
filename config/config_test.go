package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENV", "DATABASE_DRIVER", "REDIS_URL", "RATE_LIMIT_MAX_ATTEMPTS", "RATE_LIMIT_WINDOW", "BCRYPT_COST", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "", cfg.Redis.URL)
	assert.Equal(t, 5, cfg.RateLimit.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("DATABASE_CONN_MAX_LIFETIME", "forever")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_DRIVER", DriverSQLite)
	t.Setenv("DATABASE_URL", "file:budget.db")
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:budget.db", cfg.Database.URL)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}
