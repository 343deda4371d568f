package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config contains runtime configuration values.
type Config struct {
	CatalogCapacity int    `env:"CONTEST_CATALOG_CAPACITY" env-default:"100"`
	LogLevel        string `env:"CONTEST_LOG_LEVEL" env-default:"warn"`
	LogFormat       string `env:"CONTEST_LOG_FORMAT" env-default:"text"`
	PreviewLength   int    `env:"CONTEST_PREVIEW_LENGTH" env-default:"420"`
}

const (
	defaultCatalogCapacity = 100
	defaultPreviewLength   = 420
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	if cfg.CatalogCapacity <= 0 {
		cfg.CatalogCapacity = defaultCatalogCapacity
	}

	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = defaultPreviewLength
	}

	return &cfg, nil
}
