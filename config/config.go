package config

import (
	"os"
	"strconv"
)

// Config holds process-level settings. Everything comes from the environment
// with local-dev defaults.
type Config struct {
	Port         int
	DatabasePath string // empty disables the query cache entirely
	LogFile      string // empty logs to stderr only
}

// Load reads configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:         5000,
		DatabasePath: "books.db",
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	// May be set to an empty string to run without a durable cache, e.g. on
	// serverless hosts with no writable disk.
	if v, ok := os.LookupEnv("BOOKSCOUT_DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	cfg.LogFile = os.Getenv("BOOKSCOUT_LOG_FILE")

	return cfg
}
