package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrUnknownFormat indicates an output format other than text or toml.
var ErrUnknownFormat = errors.New("config: format must be \"text\" or \"toml\"")

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// Config holds runtime configuration for a percolate run.
// Values are populated from .percolate.toml, PERCOLATE_* env vars, and CLI flags.
type Config struct {
	Seed    int64  `mapstructure:"seed"`
	Workers int    `mapstructure:"workers"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("seed", 0)
	viper.SetDefault("workers", 1)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch cfg.Format {
	case FormatText, FormatTOML:
	default:
		return Config{}, fmt.Errorf("%w: got %q", ErrUnknownFormat, cfg.Format)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
