package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Log contains configuration for log output.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Rename contains defaults for the rename pipeline. Boolean fields mirror
// the command-line flags and apply only when the flag is not given.
type Rename struct {
	Placeholder string `toml:"placeholder"`
	Overwrite   bool   `toml:"overwrite"`
	Recursive   bool   `toml:"recursive"`
	NoOp        bool   `toml:"no_op"`
	Verbose     bool   `toml:"verbose"`
}

// Run contains invocation-level settings.
type Run struct {
	LockPath    string `toml:"lock_path"`
	LockEnabled bool   `toml:"lock_enabled"`
}

// Config encapsulates all configuration values for ascii-rename.
type Config struct {
	Log    Log    `toml:"log"`
	Rename Rename `toml:"rename"`
	Run    Run    `toml:"run"`
}

// Sample returns the embedded annotated sample configuration.
func Sample() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/ascii-rename/config.toml")
}

// Load parses and validates the configuration file at path, or the default
// location when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// PlaceholderRune returns the sanitizer placeholder as a rune.
func (c *Config) PlaceholderRune() rune {
	if c.Rename.Placeholder == "" {
		return rune(defaultPlaceholder[0])
	}
	return rune(c.Rename.Placeholder[0])
}

func (c *Config) normalize() error {
	var err error
	if c.Run.LockPath, err = expandPath(c.Run.LockPath); err != nil {
		return fmt.Errorf("run.lock_path: %w", err)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
