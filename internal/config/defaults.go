package config

const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultPlaceholder = "_"
	defaultLockPath    = "~/.local/share/ascii-rename/run.lock"
	defaultLockEnabled = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Rename: Rename{
			Placeholder: defaultPlaceholder,
		},
		Run: Run{
			LockPath:    defaultLockPath,
			LockEnabled: defaultLockEnabled,
		},
	}
}
