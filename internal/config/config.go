// Package config provides configuration management for drill using Viper,
// loading from a .drill.yml file, DRILL_ prefixed environment variables and
// command-line flags, in that ascending order of precedence.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Output  OutputConfig  `yaml:"output"`
	Notes   NotesConfig   `yaml:"notes"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
	Open bool   `yaml:"open"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // table, json or yaml
	Color  bool   `yaml:"color"`
}

type NotesConfig struct {
	// ExtraPaths lists directories of additional Markdown notes layered on
	// top of the embedded catalog. Serve mode watches these for changes.
	ExtraPaths []string `yaml:"extra_paths"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds a Config from viper's merged sources and validates it.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Slice values set through env vars arrive via viper, not Unmarshal
	if viper.IsSet("notes.extra_paths") && len(config.Notes.ExtraPaths) == 0 {
		config.Notes.ExtraPaths = viper.GetStringSlice("notes.extra_paths")
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Output.Format == "" {
		config.Output.Format = "table"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}
}

// Default returns the configuration used when no file or env overrides
// are present.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}
