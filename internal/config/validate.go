package config

import (
	"errors"
	"fmt"

	"asciirename/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}
	if err := c.validateRename(); err != nil {
		return err
	}
	return c.validateRun()
}

func (c *Config) validateLog() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}

func (c *Config) validateRename() error {
	p := c.Rename.Placeholder
	if len(p) != 1 {
		return fmt.Errorf("rename.placeholder must be a single character, got %q", p)
	}
	r := rune(p[0])
	if r < '!' || r > '~' {
		return fmt.Errorf("rename.placeholder must be printable ASCII, got %q", p)
	}
	if textutil.IsShellHazard(r) {
		return fmt.Errorf("rename.placeholder %q is itself a shell hazard", p)
	}
	return nil
}

func (c *Config) validateRun() error {
	if c.Run.LockEnabled && c.Run.LockPath == "" {
		return errors.New("run.lock_path must be set when the run lock is enabled")
	}
	return nil
}
