package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the client reads.
const EnvPrefix = "SUPERAPP_"

// loadDotEnv exports the variables from path into the process environment.
// Variables already set win over the file. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

// parseEnv overlays cfg with SUPERAPP_* variables.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = d
		return nil
	}

	str("API_URL", &cfg.APIURL)
	str("STORAGE", &cfg.Storage)
	str("DB_PATH", &cfg.DBPath)
	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PASSWORD", &cfg.RedisPassword)
	str("REDIS_KEY_PREFIX", &cfg.RedisKeyPrefix)
	str("LOG_LEVEL", &cfg.LogLevel)

	if err := dur("REQUEST_TIMEOUT", &cfg.RequestTimeout); err != nil {
		return err
	}
	if err := dur("ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval); err != nil {
		return err
	}

	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sREDIS_DB: %w", EnvPrefix, err)
		}
		cfg.RedisDB = n
	}
	if v, ok := lookup(EnvPrefix + "INVALIDATE_ON_FORBIDDEN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sINVALIDATE_ON_FORBIDDEN: %w", EnvPrefix, err)
		}
		cfg.InvalidateOnForbidden = b
	}
	return nil
}
