// Package config loads and validates the benchcat configuration from
// global, local, and environment sources.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the benchcat CLI tool configuration.
type Configuration struct {
	Files             []string `koanf:"files" validate:"required,min=1"`
	Format            string   `koanf:"format" validate:"oneof=tex md"`
	OutDir            string   `koanf:"out_dir" validate:"required"`
	Columns           []string `koanf:"columns"`
	AuthorTruncation  int      `koanf:"author_truncation" validate:"min=1"`
	URLTimeout        int      `koanf:"url_timeout" validate:"min=1,max=600"` // seconds
	Strict            bool     `koanf:"strict"`                               // fatal citation errors abort
	Standalone        bool     `koanf:"standalone"`                           // full LaTeX preamble (tex only)
	WithCitation      bool     `koanf:"with_citation"`                        // citation block on md pages
	NoRatings         bool     `koanf:"no_ratings"`                           // drop rating columns
	RequiredFieldPass bool     `koanf:"required"`                             // run required-field check before generating
	ShowProgress      bool     `koanf:"show_progress"`                        // spinner during URL checks
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".benchcat", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables override everything
	k.Load(env.Provider("BENCHCAT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.OutDir = expandHomePath(cfg.OutDir)
	return &cfg, nil
}

// Validate checks a configuration against its struct constraints and
// the cross-field rules the flag surface allows.
func Validate(cfg *Configuration) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Standalone && cfg.Format != "tex" {
		return fmt.Errorf("standalone is only valid with format=tex")
	}
	if cfg.WithCitation && cfg.Format != "md" {
		return fmt.Errorf("with_citation is only valid with format=md")
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: BENCHCAT_URL_TIMEOUT -> url_timeout
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "BENCHCAT_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
