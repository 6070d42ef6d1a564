package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParseEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := parseEnv(cfg, mapLookup(map[string]string{
		"SUPERAPP_API_URL":                 "https://api.example.com",
		"SUPERAPP_REQUEST_TIMEOUT":         "2s",
		"SUPERAPP_ONLINE_CHECK_INTERVAL":   "1m",
		"SUPERAPP_STORAGE":                 "redis",
		"SUPERAPP_REDIS_ADDR":              "cache:6379",
		"SUPERAPP_REDIS_DB":                "3",
		"SUPERAPP_INVALIDATE_ON_FORBIDDEN": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.InvalidateOnForbidden)
	assert.Equal(t, "superapp.db", cfg.DBPath, "unset variables keep defaults")
}

func TestParseEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"SUPERAPP_REQUEST_TIMEOUT":         "fast",
		"SUPERAPP_ONLINE_CHECK_INTERVAL":   "10",
		"SUPERAPP_REDIS_DB":                "zero",
		"SUPERAPP_INVALIDATE_ON_FORBIDDEN": "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			cfg := &Config{}
			err := parseEnv(cfg, mapLookup(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUPERAPP_TEST_DOTENV=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SUPERAPP_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SUPERAPP_TEST_DOTENV"))
}

func TestLoadDotEnv_ExistingVariableWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUPERAPP_TEST_DOTENV_KEEP=from-file\n"), 0o600))
	t.Setenv("SUPERAPP_TEST_DOTENV_KEEP", "from-env")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("SUPERAPP_TEST_DOTENV_KEEP"))
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
	require.NoError(t, loadDotEnv(""))
}
