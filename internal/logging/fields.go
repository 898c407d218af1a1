package logging

import "log/slog"

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the invocation identifier.
	FieldRunID = "run_id"
	// FieldPath is the standardized structured logging key for a path being processed.
	FieldPath = "path"
	// FieldFrom is the standardized structured logging key for a rename source path.
	FieldFrom = "from"
	// FieldTo is the standardized structured logging key for a rename destination path.
	FieldTo = "to"
	// FieldState is the standardized structured logging key for an operation's terminal state.
	FieldState = "state"
	// FieldOps is the standardized structured logging key for the collected operation count.
	FieldOps = "ops"
	// FieldDryRun is the standardized structured logging key for simulate mode.
	FieldDryRun = "dry_run"
)

// WithRun returns a logger tagged with the invocation's run identifier.
func WithRun(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID == "" {
		return logger
	}
	return logger.With(String(FieldRunID, runID))
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if component == "" {
		return logger
	}
	return logger.With(String(FieldComponent, component))
}
