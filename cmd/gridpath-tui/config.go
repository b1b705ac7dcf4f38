package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the YAML-backed startup configuration. Every key is optional;
// missing keys keep their defaults.
type Config struct {
	// Rows and Cols set the board dimensions.
	Rows int `yaml:"rows" validate:"min=10,max=50"`
	Cols int `yaml:"cols" validate:"min=10,max=50"`
	// Speed is the initial animation speed, higher is faster.
	Speed int `yaml:"speed" validate:"min=1,max=100"`
	// HistorySize caps the run-statistics buffer.
	HistorySize int `yaml:"history_size" validate:"min=1,max=20"`
	// Seed, when non-zero, makes maze generation reproducible.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Rows:        20,
		Cols:        30,
		Speed:       50,
		HistorySize: 5,
	}
}

// LoadConfig reads and validates a YAML config file, layering it over
// DefaultConfig. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return cfg, fmt.Errorf("config: %s must satisfy %s=%s (got %v)",
				f.Field(), f.Tag(), f.Param(), f.Value())
		}

		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
