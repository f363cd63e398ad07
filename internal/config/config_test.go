package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("QUERY_DEFAULT_LIMIT", "50")
	t.Setenv("STATS_RECENT_WINDOW_DAYS", "invalid")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 50, cfg.Query.DefaultLimit)
	assert.Equal(t, 7, cfg.Query.RecentWindowDays)
	assert.Equal(t, 12, cfg.Query.MonthlyBuckets)
	assert.Equal(t, 1000, cfg.Query.MaxLimit)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("MINIO_ENDPOINT", "")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 100, cfg.Query.SearchDefaultLimit)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}
