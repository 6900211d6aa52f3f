// Package config provides configuration management for the NBA probability
// pipeline. Settings are sourced from environment variables (optionally via a
// dotenv file); every option has a usable default so absence never prevents
// startup. The loaded value is passed down explicitly, there is no package
// level cache.
package config

import (
	"os"
	"path/filepath"
)

// Settings represents the complete runtime configuration
type Settings struct {
	PolymarketAPIKey    string `mapstructure:"polymarket_api_key"`
	PolymarketAPISecret string `mapstructure:"polymarket_api_secret"`
	HTTPProxy           string `mapstructure:"http_proxy" validate:"omitempty,url"`
	HTTPSProxy          string `mapstructure:"https_proxy" validate:"omitempty,url"`
	LogLevel            string `mapstructure:"log_level" validate:"required"`
	DataDir             string `mapstructure:"data_dir" validate:"required"`
	DatabaseDSN         string `mapstructure:"database_dsn"`

	Paths Paths `mapstructure:"-"`
}

// Paths is the fixed directory tree used for persisted artifacts
type Paths struct {
	DataDir          string
	RawDataDir       string
	ProcessedDataDir string
	ModelsDir        string
	PolymarketDir    string
}

// NewPaths derives the directory tree from the configured data root
func NewPaths(dataDir string) Paths {
	return Paths{
		DataDir:          dataDir,
		RawDataDir:       filepath.Join(dataDir, "raw"),
		ProcessedDataDir: filepath.Join(dataDir, "processed"),
		ModelsDir:        filepath.Join(dataDir, "models"),
		PolymarketDir:    filepath.Join(dataDir, "polymarket"),
	}
}

// EnsureExists creates the directories if they do not already exist
func (p Paths) EnsureExists() error {
	for _, dir := range []string{
		p.DataDir,
		p.RawDataDir,
		p.ProcessedDataDir,
		p.ModelsDir,
		p.PolymarketDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// HasDatabase reports whether an optional Postgres sink is configured
func (s *Settings) HasDatabase() bool {
	return s.DatabaseDSN != ""
}
