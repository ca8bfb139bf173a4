package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Catalog CatalogConfig
}

type CatalogConfig struct {
	// Source is an http(s) URL or a local file path to the products JSON.
	Source  string        `env:"CATALOG_SOURCE,  default=products.json"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
