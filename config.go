package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config is read from the environment after .env autoload.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	GinMode   string `env:"GIN_MODE" envDefault:"release" validate:"oneof=debug release test"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	LogFile   string `env:"LOG_FILE"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./static" validate:"required"`
	SiteTitle string `env:"SITE_TITLE"`
}

// LoadConfig parses and validates the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
