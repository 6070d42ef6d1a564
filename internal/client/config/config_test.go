package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.APIURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.False(t, c.InvalidateOnForbidden)
	assert.Equal(t, "info", c.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		wantURL string
	}{
		{name: "defaults", mutate: func(*Config) {}, wantURL: "http://localhost:8080"},
		{name: "trailing slash trimmed", mutate: func(c *Config) { c.APIURL = "https://api.example.com/" }, wantURL: "https://api.example.com"},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage = "etcd" }, wantErr: ErrInvalidStorage},
		{name: "no scheme", mutate: func(c *Config) { c.APIURL = "localhost:8080" }, wantErr: ErrInvalidAPIURL},
		{name: "empty url", mutate: func(c *Config) { c.APIURL = "" }, wantErr: ErrInvalidAPIURL},
		{name: "zero check interval", mutate: func(c *Config) { c.OnlineCheckInterval = 0 }, wantErr: ErrInvalidPeriod},
		{name: "negative check interval", mutate: func(c *Config) { c.OnlineCheckInterval = -time.Second }, wantErr: ErrInvalidPeriod},
		{name: "zero request timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, c.APIURL)
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("SUPERAPP_API_URL", "http://env:1")
	t.Setenv("SUPERAPP_STORAGE", "memory")
	t.Setenv("SUPERAPP_LOG_LEVEL", "debug")

	path := writeTempJSON(t, map[string]any{
		"api_url": "http://json:2",
		"storage": "redis",
	})

	cfg, err := Load([]string{"-c", path, "-a", "http://flag:3"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3", cfg.APIURL, "flags win over json and env")
	assert.Equal(t, StorageRedis, cfg.Storage, "json wins over env")
	assert.Equal(t, "debug", cfg.LogLevel, "env wins over defaults")
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout, "untouched default")
}

func TestLoad_InvalidStorage(t *testing.T) {
	_, err := Load([]string{"-s", "floppy"})
	require.ErrorIs(t, err, ErrInvalidStorage)
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := Load([]string{"-t", "soon"})
	require.Error(t, err)
}

func TestLoad_ZeroCheckIntervalRejected(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("SUPERAPP_ONLINE_CHECK_INTERVAL", "0s")
		_, err := Load(nil)
		require.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("flag", func(t *testing.T) {
		_, err := Load([]string{"-i", "0"})
		require.ErrorIs(t, err, ErrInvalidPeriod)
	})
}
