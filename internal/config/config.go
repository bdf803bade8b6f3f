// Package config holds the fixed sissigen project layout and the optional
// ambient settings read from sissigen.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

// Config holds optional settings. The zero value is usable.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Preview PreviewConfig `yaml:"preview"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// PreviewConfig represents preview server defaults.
type PreviewConfig struct {
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText}}
}

// Load reads the config file at path. A missing file yields Default. Values
// may reference environment variables as ${VAR}. Warnings describe values
// that were normalized.
func Load(path string) (*Config, []string, error) {
	// #nosec G304 -- path is the fixed project config file.
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil, nil
	}
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
			WithContext("path", path).
			Build()
	}
	return cfg, cfg.normalize(), nil
}

func (c *Config) normalize() []string {
	var warnings []string
	lvl, ok := NormalizeLogLevel(string(c.Logging.Level))
	if !ok {
		warnings = append(warnings, fmt.Sprintf("logging.level: unknown value %q, using %s", c.Logging.Level, lvl))
	}
	c.Logging.Level = lvl

	format, ok := NormalizeLogFormat(string(c.Logging.Format))
	if !ok {
		warnings = append(warnings, fmt.Sprintf("logging.format: unknown value %q, using %s", c.Logging.Format, format))
	}
	c.Logging.Format = format
	return warnings
}
