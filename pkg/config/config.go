// Package config loads server configuration from an optional YAML file with
// environment overrides. A missing credential degrades AI-dependent
// operations at call time; it never prevents startup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the analysis backend.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// SearchConfig configures the search aggregator transport.
type SearchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Search:  SearchConfig{TimeoutSeconds: 15},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (if non-empty) on top of defaults, then
// applies environment overrides. GEMINI_API_KEY always wins over the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	return cfg, nil
}
