// Package config provides configuration management for the cleaner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath    = errors.New("input.path is required")
	ErrInvalidDelimiter    = errors.New("input.delimiter must be a single character other than quote, CR or LF")
	ErrInvalidOutputFormat = errors.New("output.format must be one of: json, jsonl, yaml, toon")
	ErrInvalidIndent       = errors.New("output.indent must be between 0 and 8")
	ErrInvalidLockTimeout  = errors.New("output.lock_timeout_ms must be non-negative")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// formatExtensions maps each output format to the file extension it writes.
var formatExtensions = map[string]string{
	"json":  ".json",
	"jsonl": ".jsonl",
	"yaml":  ".yaml",
	"toon":  ".toon",
}

// Config represents the complete cleaner configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig describes the delimited source file.
type InputConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	// Path overrides the destination derived from the input name.
	Path          string `yaml:"path"`
	Format        string `yaml:"format"`
	Indent        int    `yaml:"indent"`
	LockTimeoutMs int    `yaml:"lock_timeout_ms"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path:      "employees.csv",
			Delimiter: ",",
		},
		Output: OutputConfig{
			Format:        "json",
			Indent:        4,
			LockTimeoutMs: 5000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			File:   "employees.log",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return ErrMissingInputPath
	}

	if _, err := c.Input.DelimiterRune(); err != nil {
		return err
	}

	if _, ok := formatExtensions[c.Output.Format]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, c.Output.Format)
	}

	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return ErrInvalidIndent
	}

	if c.Output.LockTimeoutMs < 0 {
		return ErrInvalidLockTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// DelimiterRune returns the column separator. An empty delimiter means comma.
func (ic *InputConfig) DelimiterRune() (rune, error) {
	if ic.Delimiter == "" {
		return ',', nil
	}

	if ic.Delimiter == `\t` {
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(ic.Delimiter)
	if r == utf8.RuneError || size != len(ic.Delimiter) {
		return 0, ErrInvalidDelimiter
	}

	if r == '"' || r == '\r' || r == '\n' {
		return 0, ErrInvalidDelimiter
	}

	return r, nil
}

// Extension returns the file extension for the configured format.
func (oc *OutputConfig) Extension() string {
	if ext, ok := formatExtensions[oc.Format]; ok {
		return ext
	}

	return ".json"
}

// GetLockTimeout returns the output lock wait as a duration.
func (oc *OutputConfig) GetLockTimeout() time.Duration {
	return time.Duration(oc.LockTimeoutMs) * time.Millisecond
}

// GetOutputPath returns the explicit output path, or the input path with its
// extension replaced by the format's extension.
func (c *Config) GetOutputPath() string {
	if c.Output.Path != "" {
		return c.Output.Path
	}

	return DeriveOutputPath(c.Input.Path, c.Output.Extension())
}

// DeriveOutputPath keeps the directory and base name of input and swaps its extension.
func DeriveOutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))

	return base + ext
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s (%s), LogLevel: %s}",
		c.Input.Path,
		c.GetOutputPath(),
		c.Output.Format,
		c.Logging.Level,
	)
}
