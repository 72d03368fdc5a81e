package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("FILTER_CACHE_TTL_SEC", "120")
	t.Setenv("CORS_ORIGINS", "https://colegio.example")

	cfg := Load()

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 2*time.Minute, cfg.FilterCacheTTL)
	assert.Equal(t, "https://colegio.example", cfg.CORSOrigins)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("APP_HOST")
	os.Unsetenv("FILTER_CACHE_TTL_SEC")
	os.Unsetenv("CORS_ORIGINS")

	cfg := Load()

	assert.Equal(t, "", cfg.AppHost)
	assert.Equal(t, time.Minute, cfg.FilterCacheTTL)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")

	assert.Equal(t, "value", getEnv("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))

	t.Setenv("TEST_ENV_VAR", "  padded  ")
	assert.Equal(t, "padded", getEnv("TEST_ENV_VAR", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
