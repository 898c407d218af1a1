package main

import (
	"fmt"
	"io"

	"asciirename/internal/rename"
)

// consoleReporter prints one line per terminal operation state. Renames and
// errors always print; benign skips only with verbose enabled.
type consoleReporter struct {
	out     io.Writer
	errOut  io.Writer
	noop    bool
	verbose bool
}

func newConsoleReporter(out, errOut io.Writer, noop, verbose bool) *consoleReporter {
	return &consoleReporter{out: out, errOut: errOut, noop: noop, verbose: verbose}
}

func (r *consoleReporter) Report(rec rename.Record) {
	switch rec.State {
	case rename.StateApplied:
		if r.noop {
			fmt.Fprintf(r.out, "Would have renamed %q to %q...\n", rec.From, rec.To)
		} else {
			fmt.Fprintf(r.out, "Renaming %q to %q...\n", rec.From, rec.To)
		}
	case rename.StateSkippedMissing:
		if r.verbose {
			fmt.Fprintf(r.out, "Path no longer exists, skipping %q...\n", rec.From)
		}
	case rename.StateSkippedNoChange:
		if r.verbose {
			fmt.Fprintf(r.out, "No need to rename %q.\n", rec.From)
		}
	case rename.StateSkippedConvert:
		fmt.Fprintf(r.errOut, "ERROR: unable to convert %q to ASCII, skipping.\n", rec.From)
	case rename.StateSkippedCollision:
		fmt.Fprintf(r.errOut, "ERROR: %q already exists.\n", rec.To)
		fmt.Fprintln(r.errOut, "ERROR: specify --overwrite to overwrite.")
	case rename.StateSkippedRenameFailed:
		fmt.Fprintf(r.errOut, "ERROR: file system error, unable to rename %q to %q.\n", rec.From, rec.To)
	}
}
