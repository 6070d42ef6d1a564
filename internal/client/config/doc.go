// Package config loads runtime configuration for the SuperApp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, loaded with godotenv. Variables
//     already present in the environment are not overwritten.
//  3. SUPERAPP_* environment variables (SUPERAPP_API_URL,
//     SUPERAPP_REQUEST_TIMEOUT, SUPERAPP_STORAGE, ...).
//  4. Optional JSON file selected via -c or -config.
//  5. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "api_url": "http://localhost:8080",
//	  "request_timeout": "15s",
//	  "online_check_interval": "3s",
//	  "storage": "sqlite",
//	  "db_path": "superapp.db"
//	}
package config
