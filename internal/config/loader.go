package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variables recognized by Load. The Polymarket credentials and
// proxies keep their conventional upstream names; everything project-specific
// is prefixed.
var envBindings = map[string]string{
	"polymarket_api_key":    "POLYMARKET_API_KEY",
	"polymarket_api_secret": "POLYMARKET_API_SECRET",
	"http_proxy":            "HTTP_PROXY",
	"https_proxy":           "HTTPS_PROXY",
	"log_level":             "NBA_PROBS_LOG_LEVEL",
	"data_dir":              "NBA_PROBS_DATA_DIR",
	"database_dsn":          "NBA_PROBS_DATABASE_DSN",
}

// Load reads settings from the environment, optionally seeded from a dotenv
// file. envFile may be empty, in which case ".env" is loaded when present.
// The persisted directory tree is created on demand.
func Load(envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	v := viper.New()
	for key, env := range envBindings {
		// Defaults register the key so Unmarshal sees env-only values.
		v.SetDefault(key, "")
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	v.SetDefault("log_level", "info")
	v.SetDefault("data_dir", "data")

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	settings.Paths = NewPaths(settings.DataDir)

	if err := Validate(settings); err != nil {
		return nil, err
	}
	if err := settings.Paths.EnsureExists(); err != nil {
		return nil, fmt.Errorf("failed to create data directories: %w", err)
	}

	return settings, nil
}
