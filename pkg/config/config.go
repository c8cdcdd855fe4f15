// Package config provides configuration file support for the fsops CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory.
const ConfigFileName = "fsops.yaml"

// Config represents the fsops configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	NoColor bool          `yaml:"no_color"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads fsops.yaml from dir, then applies a .env file and FSOPS_*
// environment overrides. A missing config file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := Default()

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// Save writes configuration to fsops.yaml in dir.
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FSOPS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FSOPS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("FSOPS_NO_COLOR"); v != "" {
		cfg.NoColor = v == "1" || strings.EqualFold(v, "true")
	}
}
