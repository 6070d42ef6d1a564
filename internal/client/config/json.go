package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/superapp/internal/flagx"
	"github.com/dmitrijs2005/superapp/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from a zero value, so a partial file only
// overrides what it names. Durations use timex.Duration and may be given as
// "3s" or as integer nanoseconds.
type JsonConfig struct {
	APIURL                *string         `json:"api_url"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval   *timex.Duration `json:"online_check_interval"`
	InvalidateOnForbidden *bool           `json:"invalidate_on_forbidden"`

	Storage        *string `json:"storage"`
	DBPath         *string `json:"db_path"`
	RedisAddr      *string `json:"redis_addr"`
	RedisPassword  *string `json:"redis_password"`
	RedisDB        *int    `json:"redis_db"`
	RedisKeyPrefix *string `json:"redis_key_prefix"`

	LogLevel *string `json:"log_level"`
}

// parseJSON overlays cfg with the file passed as -c or -config. Without
// either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.APIURL, jc.APIURL)
	setIf(&cfg.InvalidateOnForbidden, jc.InvalidateOnForbidden)
	setIf(&cfg.Storage, jc.Storage)
	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	setIf(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
