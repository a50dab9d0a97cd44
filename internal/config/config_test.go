package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_DRIVER", "REDIS_URL", "LOG_LEVEL", "BCRYPT_COST", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "1.0", cfg.ServerVersion)
	assert.False(t, cfg.SessionCacheEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/mrp-test.db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_CACHE_TTL", "1m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/mrp-test.db", cfg.SQLitePath)
	assert.True(t, cfg.SessionCacheEnabled())
	assert.Equal(t, time.Minute, cfg.SessionCacheTTL)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr())
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "HTTP_PORT")

	t.Setenv("HTTP_PORT", "")
	t.Setenv("DB_RETRY_DELAY", "soon")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "DB_RETRY_DELAY")
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		HTTPPort:         70000,
		RequestTimeout:   time.Second,
		DBDriver:         "mysql",
		DBConnectRetries: 0,
		BcryptCost:       100,
		LogLevel:         "loud",
		LogFormat:        "xml",
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"HTTP_PORT", "DB_DRIVER", "DB_CONNECT_RETRIES", "BCRYPT_COST", "LOG_LEVEL", "LOG_FORMAT"} {
		assert.Contains(t, err.Error(), want)
	}
}
