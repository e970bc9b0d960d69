// Package config provides configuration loading for Hearth.
//
// Settings come from a YAML file (~/.config/hearth/config.yaml by default)
// overridden by HEARTH_* environment variables, with hardcoded defaults
// underneath.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DBPath     string    `koanf:"db_path"`
	CatalogDir string    `koanf:"catalog_dir"`
	Log        LogConfig `koanf:"log"`
	Butler     Butler    `koanf:"butler"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug|info|warn|error
	File   string `koanf:"file"`   // empty disables file output
	Format string `koanf:"format"` // json|console
}

type Butler struct {
	// Seed fixes the random source for persona and quote selection.
	// 0 means seed from the clock.
	Seed int64 `koanf:"seed"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "hearth", "config.yaml"), nil
}

func defaults() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path (the default path when empty), then
// applies HEARTH_* environment overrides. A missing file is not an error.
//
// Environment variables map to config keys with underscores as separators:
//
//	HEARTH_DB_PATH      -> db_path
//	HEARTH_LOG_LEVEL    -> log.level
//	HEARTH_BUTLER_SEED  -> butler.seed
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	k := koanf.New(".")

	if data, err := os.ReadFile(path); err == nil {
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("HEARTH_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps HEARTH_LOG_LEVEL to log.level, HEARTH_DB_PATH to
// db_path, and so on. Single-underscore top-level keys (db_path,
// catalog_dir) are special-cased because underscores otherwise separate
// nesting levels.
func envTransform(key string) string {
	s := strings.ToLower(strings.TrimPrefix(key, "HEARTH_"))
	switch s {
	case "db_path", "catalog_dir":
		return s
	}
	return strings.ReplaceAll(s, "_", ".")
}

func (c *Config) validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// ResolveDBPath returns the configured path or the storage default.
func (c *Config) ResolveDBPath(fallback func() (string, error)) (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return fallback()
}
