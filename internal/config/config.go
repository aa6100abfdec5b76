package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// StorageConfig locates the snapshot file.
type StorageConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultsConfig seeds the iteration settings of a fresh snapshot. An empty
// anchor date means "today".
type DefaultsConfig struct {
	PIStartAnchorDate string `mapstructure:"pi_start_anchor_date"`
	IterationsPerPI   int    `mapstructure:"iterations_per_pi"`
	StartingPINumber  int    `mapstructure:"starting_pi_number"`
}

// Load loads configuration from file. A missing config file is fine: every
// field has a default and the tool must run with zero setup.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-tracker")
	}

	v.SetDefault("storage.file", "holiday-tracker.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("defaults.iterations_per_pi", 6)
	v.SetDefault("defaults.starting_pi_number", 7)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.File == "" {
		return fmt.Errorf("storage.file is required")
	}
	if c.Defaults.IterationsPerPI < 1 || c.Defaults.IterationsPerPI > model.MaxIterationsPerPI {
		return fmt.Errorf("defaults.iterations_per_pi must be 1-%d, got %d",
			model.MaxIterationsPerPI, c.Defaults.IterationsPerPI)
	}
	if c.Defaults.StartingPINumber < 1 {
		return fmt.Errorf("defaults.starting_pi_number must be at least 1, got %d",
			c.Defaults.StartingPINumber)
	}
	if c.Defaults.PIStartAnchorDate != "" {
		if _, err := dateutil.FromDateString(c.Defaults.PIStartAnchorDate); err != nil {
			return fmt.Errorf("defaults.pi_start_anchor_date: %w", err)
		}
	}
	return nil
}

// SeedSettings resolves the configured defaults into concrete iteration
// settings, anchoring at the given date when no anchor is configured.
func (c *Config) SeedSettings(fallbackAnchorDate string) model.Settings {
	anchor := c.Defaults.PIStartAnchorDate
	if anchor == "" {
		anchor = fallbackAnchorDate
	}
	return model.Settings{
		PIStartAnchorDate: anchor,
		IterationsPerPI:   c.Defaults.IterationsPerPI,
		StartingPINumber:  c.Defaults.StartingPINumber,
	}
}
