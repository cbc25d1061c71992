// Package config loads runtime configuration for a relics session.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a relics session.
// Values are populated from .relics.yaml, RELICS_* env vars, and CLI flags.
type Config struct {
	ProjectPath     string `mapstructure:"project_path"`
	ProfilePath     string `mapstructure:"profile_path"`
	ExportPath      string `mapstructure:"export_path"`
	WatchDebounceMS int    `mapstructure:"watch_debounce_ms"`
	Verbose         bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("project_path", "relics.rproj")
	viper.SetDefault("profile_path", "")
	viper.SetDefault("export_path", "relics.json")
	viper.SetDefault("watch_debounce_ms", 200)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
