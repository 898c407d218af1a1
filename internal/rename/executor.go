package rename

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"asciirename/internal/fileutil"
	"asciirename/internal/logging"
	"asciirename/internal/plan"
	"asciirename/internal/textutil"
)

// State is the terminal disposition of one rename operation.
type State string

const (
	// StateApplied means the rename was performed (or simulated in dry-run mode).
	StateApplied State = "applied"
	// StateSkippedMissing means the resolved path no longer exists.
	StateSkippedMissing State = "skipped-missing"
	// StateSkippedNoChange means the name is already shell-safe ASCII.
	StateSkippedNoChange State = "no-change"
	// StateSkippedConvert means transliteration could not produce a valid name.
	StateSkippedConvert State = "skipped-convert"
	// StateSkippedCollision means the destination exists and overwrite is disallowed.
	StateSkippedCollision State = "skipped-collision"
	// StateSkippedRenameFailed means the filesystem rename itself failed.
	StateSkippedRenameFailed State = "skipped-rename-failed"
)

// Failure reports whether the state counts toward the run's failure tally.
// Missing paths and names that need no change are benign.
func (s State) Failure() bool {
	switch s {
	case StateSkippedConvert, StateSkippedCollision, StateSkippedRenameFailed:
		return true
	}
	return false
}

var (
	// ErrCollision marks a destination that already exists without overwrite.
	ErrCollision = errors.New("destination already exists")
	// ErrConvert marks a name that could not be transliterated.
	ErrConvert = errors.New("ascii conversion failed")
)

// Record describes the terminal outcome of one operation. From is the
// resolved current path; To is the candidate new path once one was computed.
type Record struct {
	Op    plan.Op
	State State
	From  string
	To    string
	Err   error
}

// Reporter consumes per-operation outcome records as they are produced.
type Reporter interface {
	Report(Record)
}

// Result summarizes one run. Skipped counts only failures; it doubles as the
// process exit status.
type Result struct {
	Renamed int
	Skipped int
}

// Total is the number of operations that reached a counted terminal state.
func (r Result) Total() int {
	return r.Renamed + r.Skipped
}

// ExitCode maps the failure tally to a process exit status, capped so it
// survives POSIX exit-status truncation.
func (r Result) ExitCode() int {
	if r.Skipped > 125 {
		return 125
	}
	return r.Skipped
}

// Options configure executor behavior.
type Options struct {
	// DryRun reports and tracks renames without touching the filesystem.
	DryRun bool
	// Overwrite permits renames onto existing destinations.
	Overwrite bool
	// Placeholder substitutes for shell metacharacters in new names.
	Placeholder rune
	// Reporter receives a record per terminal state; nil discards them.
	Reporter Reporter
}

// Executor applies operations sequentially, resolving each against the
// tracker before acting and recording every completed rename.
type Executor struct {
	opts    Options
	tracker *Tracker
	logger  *slog.Logger
	records []Record
	result  Result
}

// NewExecutor constructs an executor with a fresh tracker.
func NewExecutor(opts Options, logger *slog.Logger) *Executor {
	if opts.Placeholder == 0 {
		opts.Placeholder = textutil.DefaultPlaceholder
	}
	return &Executor{
		opts:    opts,
		tracker: NewTracker(),
		logger:  logging.WithComponent(logger, "executor"),
	}
}

// Tracker exposes the executor's rename log.
func (e *Executor) Tracker() *Tracker {
	return e.tracker
}

// Records returns every terminal record produced so far, in order.
func (e *Executor) Records() []Record {
	return append([]Record(nil), e.records...)
}

// Run processes the operations in the given order and returns the summary.
func (e *Executor) Run(ops []plan.Op) Result {
	e.logger.Debug("run starting",
		logging.Int(logging.FieldOps, len(ops)),
		logging.Bool(logging.FieldDryRun, e.opts.DryRun))
	for _, op := range ops {
		e.process(op)
	}
	return e.result
}

func (e *Executor) process(op plan.Op) {
	current := e.tracker.Resolve(op.Source)
	e.logger.Debug("processing", logging.String(logging.FieldPath, current))

	if !fileutil.Exists(e.onDisk(current)) {
		e.finish(Record{Op: op, State: StateSkippedMissing, From: current})
		return
	}

	dir, leaf := filepath.Split(current)
	ascii, err := textutil.Transliterate(leaf)
	if err != nil {
		e.finish(Record{
			Op:    op,
			State: StateSkippedConvert,
			From:  current,
			Err:   fmt.Errorf("%w: %v", ErrConvert, err),
		})
		return
	}
	newName := textutil.SanitizeShell(ascii, e.opts.Placeholder)

	candidate := dir + newName
	if candidate == current {
		e.finish(Record{Op: op, State: StateSkippedNoChange, From: current})
		return
	}

	if fileutil.Exists(e.onDisk(candidate)) && !e.opts.Overwrite {
		// A case-insensitive filesystem can alias both spellings to the same
		// entry; that is a self-rename, not a collision.
		if !fileutil.SameEntry(e.onDisk(current), e.onDisk(candidate)) {
			e.finish(Record{
				Op:    op,
				State: StateSkippedCollision,
				From:  current,
				To:    candidate,
				Err:   fmt.Errorf("%w: %q", ErrCollision, candidate),
			})
			return
		}
	}

	if !e.opts.DryRun {
		if err := os.Rename(current, candidate); err != nil {
			e.finish(Record{
				Op:    op,
				State: StateSkippedRenameFailed,
				From:  current,
				To:    candidate,
				Err:   err,
			})
			return
		}
	}

	// Dry-run renames are recorded too so later dependent operations resolve
	// exactly as they would in a real run.
	e.tracker.Record(current, candidate)
	e.finish(Record{Op: op, State: StateApplied, From: current, To: candidate})
}

// onDisk maps a tracker-resolved path back to the spelling actually present
// on the filesystem. In a real run those are the same; in a dry run earlier
// renames were only simulated, so existence and equivalence probes must use
// the un-renamed spelling for the run to report the same states a real run
// would.
func (e *Executor) onDisk(path string) string {
	if !e.opts.DryRun {
		return path
	}
	return e.tracker.Unresolve(path)
}

func (e *Executor) finish(rec Record) {
	switch {
	case rec.State == StateApplied:
		e.result.Renamed++
	case rec.State.Failure():
		e.result.Skipped++
	}

	attrs := []logging.Attr{
		logging.String(logging.FieldState, string(rec.State)),
		logging.String(logging.FieldFrom, rec.From),
	}
	if rec.To != "" {
		attrs = append(attrs, logging.String(logging.FieldTo, rec.To))
	}
	if rec.Err != nil {
		attrs = append(attrs, logging.Error(rec.Err))
		e.logger.Warn("operation skipped", logging.Args(attrs...)...)
	} else {
		e.logger.Debug("operation finished", logging.Args(attrs...)...)
	}

	e.records = append(e.records, rec)
	if e.opts.Reporter != nil {
		e.opts.Reporter.Report(rec)
	}
}
