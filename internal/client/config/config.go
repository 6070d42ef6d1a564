package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Storage backends for the durable session copy.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

var (
	ErrInvalidStorage = errors.New("unknown storage backend")
	ErrInvalidAPIURL  = errors.New("invalid api url")
	ErrInvalidPeriod  = errors.New("duration must be positive")
)

// Config holds runtime settings for the SuperApp CLI.
//
// APIURL is the backend origin without the /api/v1 suffix; the client
// derives both the API base and the health endpoint from it.
type Config struct {
	APIURL                string
	RequestTimeout        time.Duration
	OnlineCheckInterval   time.Duration
	InvalidateOnForbidden bool

	Storage        string
	DBPath         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	LogLevel string
	EnvFile  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.InvalidateOnForbidden = false

	c.Storage = StorageSQLite
	c.DBPath = "superapp.db"
	c.RedisAddr = "localhost:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisKeyPrefix = "superapp:client:"

	c.LogLevel = "info"
	c.EnvFile = ".env"
}

// Validate checks the values that cannot be fixed up later.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorage, c.Storage)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout %s", ErrInvalidPeriod, c.RequestTimeout)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("%w: online check interval %s", ErrInvalidPeriod, c.OnlineCheckInterval)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	return nil
}

// Load builds a Config from defaults, the .env file, SUPERAPP_* environment
// variables, an optional JSON file and finally command-line flags. Later
// sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(cfg.EnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
