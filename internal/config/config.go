package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// envOverrides take precedence over the yaml file.
type envOverrides struct {
	Port        int    `env:"PORT"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL"`
}

// Load reads the yaml config at path (the file is optional) and applies
// environment overrides. A missing database URL after both sources is a
// fatal startup condition surfaced as an error to the caller.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Log.Level = "info"

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if ov.Port != 0 {
		cfg.Server.Port = ov.Port
	}
	if ov.DatabaseURL != "" {
		cfg.Database.URL = ov.DatabaseURL
	}
	if ov.LogLevel != "" {
		cfg.Log.Level = ov.LogLevel
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database url is not configured (set database.url or DATABASE_URL)")
	}
	return cfg, nil
}
