// Package config provides configuration management for the medline command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/helixir/medline/internal/observability"
	"github.com/helixir/medline/internal/processor"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MEDLINE"

// Config holds all configuration for the medline command.
type Config struct {
	// Logging contains structured logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
	// Metrics contains Prometheus textfile settings.
	Metrics MetricsConfig `mapstructure:"metrics"`
	// Output controls how documents are written.
	Output OutputConfig `mapstructure:"output"`
	// Dedup contains duplicate citation detection settings.
	Dedup DedupConfig `mapstructure:"dedup"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level (trace, debug, info, warn, error, fatal, panic).
	Level string `mapstructure:"level"`
	// Format is the log format (json, console).
	Format string `mapstructure:"format"`
	// Output is the log output destination (stdout, stderr).
	Output string `mapstructure:"output"`
	// AddSource adds source file and line to log output.
	AddSource bool `mapstructure:"add_source"`
	// TimeFormat is the timestamp format.
	TimeFormat string `mapstructure:"time_format"`
}

// Observability converts the section into the logger's own configuration.
func (c LoggingConfig) Observability() observability.LoggingConfig {
	return observability.LoggingConfig{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		AddSource:  c.AddSource,
		TimeFormat: c.TimeFormat,
	}
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	// Enabled enables metrics collection.
	Enabled bool `mapstructure:"enabled"`
	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace"`
	// TextfilePath is where metrics are written when the command exits.
	// Empty disables the textfile.
	TextfilePath string `mapstructure:"textfile_path"`
}

// OutputConfig holds document output settings.
type OutputConfig struct {
	// Indent is the per-level indent for XML output. Empty writes compact XML.
	Indent string `mapstructure:"indent"`
	// Format is the convert output format (xml, json).
	Format string `mapstructure:"format"`
}

// DedupConfig holds duplicate detection configuration.
type DedupConfig struct {
	// AuthorThreshold is the author overlap required for a title match (0-1).
	AuthorThreshold float64 `mapstructure:"author_threshold"`
	// MinTitleLength is the shortest normalized title compared by title.
	MinTitleLength int `mapstructure:"min_title_length"`
}

// Load loads configuration from environment variables and config files.
// When path is non-empty that file is read and must exist; otherwise the
// standard locations are searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/medline")
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("logging.time_format", "2006-01-02T15:04:05Z07:00")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "medline")
	v.SetDefault("metrics.textfile_path", "")

	// Output defaults
	v.SetDefault("output.indent", "  ")
	v.SetDefault("output.format", processor.FormatXML)

	// Dedup defaults
	v.SetDefault("dedup.author_threshold", 0.5)
	v.SetDefault("dedup.min_title_length", 20)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "pretty":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace is required when metrics are enabled")
	}

	if strings.TrimSpace(c.Output.Indent) != "" {
		return fmt.Errorf("output indent must contain only whitespace")
	}

	switch c.Output.Format {
	case processor.FormatXML, processor.FormatJSON:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	if c.Dedup.AuthorThreshold < 0 || c.Dedup.AuthorThreshold > 1 {
		return fmt.Errorf("dedup author threshold must be between 0 and 1")
	}
	if c.Dedup.MinTitleLength < 0 {
		return fmt.Errorf("dedup min title length must not be negative")
	}

	return nil
}
