// Package config loads the calculator's CLI and REPL settings from a TOML
// or YAML file, falling back to built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// package logger instance
	log = logrus.New()

	TAG = "config"
)

// SetLogLevelString changes package log level.
func SetLogLevelString(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	SetLogLevel(ll)
	return nil
}

// SetLogLevel changes package log level.
func SetLogLevel(level logrus.Level) {
	log.Level = level
}

// GetLogLevel gets package log level.
func GetLogLevel() logrus.Level {
	return log.Level
}

// Format selects the on-disk encoding of a config file.
type Format int

const (
	FormatAuto Format = iota // pick by file extension, TOML by default
	FormatTOML
	FormatYAML
)

// Config holds the CLI and REPL settings.
type Config struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Color       bool   `toml:"color" yaml:"color"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Prompt:      "==> ",
		HistoryFile: filepath.Join(home, ".rpn_history"),
		Color:       true,
		LogLevel:    "warn",
	}
}

// DefaultPath returns the conventional config file location, or "" when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rpn", "config.toml")
}

// Load reads the file at path over the defaults, picking the format from
// the file extension.
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat is Load with an explicit format.
func LoadWithFormat(path string, format Format) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if format == FormatAuto {
		format = detectFormat(path)
	}

	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	log.WithField("path", path).Debugf("[%s]: loaded", TAG)
	return cfg, nil
}

// Resolve loads the explicit path when given, the default file when it
// exists, and the built-in defaults otherwise. Only an explicit path is
// required to exist.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		log.WithField("path", path).Debugf("[%s]: no config file, using defaults", TAG)
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the settings that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("bad log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
