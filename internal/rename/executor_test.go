package rename

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"asciirename/internal/logging"
	"asciirename/internal/plan"
	"asciirename/internal/testsupport"
)

func collectOps(t *testing.T, recursive bool, args ...string) []plan.Op {
	t.Helper()

	b := plan.NewBuilder(recursive, nil, nil)
	for _, arg := range args {
		if err := b.Add(arg); err != nil {
			t.Fatal(err)
		}
	}
	return b.Ops()
}

func TestExecutorLogsRunStart(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ünïcode.txt")
	testsupport.WriteFile(t, src)

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	e := NewExecutor(Options{DryRun: true}, logger)
	e.Run(collectOps(t, false, src))

	dec := json.NewDecoder(&buf)
	var record map[string]any
	if err := dec.Decode(&record); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if record["msg"] != "run starting" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if record[logging.FieldOps] != float64(1) {
		t.Fatalf("ops = %v", record[logging.FieldOps])
	}
	if record[logging.FieldDryRun] != true {
		t.Fatalf("dry_run = %v", record[logging.FieldDryRun])
	}
}

func TestExecutorRenamesUnicodeName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ünïcode.txt")
	testsupport.WriteFile(t, src)

	e := NewExecutor(Options{}, nil)
	result := e.Run(collectOps(t, false, src))

	if result.Renamed != 1 || result.Skipped != 0 {
		t.Fatalf("result = %+v", result)
	}
	testsupport.MustNotExist(t, src)
	testsupport.MustExist(t, filepath.Join(dir, "unicode.txt"))
}

func TestExecutorSanitizesShellMetacharacters(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a;b$c.txt")
	testsupport.WriteFile(t, src)

	e := NewExecutor(Options{}, nil)
	result := e.Run(collectOps(t, false, src))

	if result.Renamed != 1 {
		t.Fatalf("result = %+v", result)
	}
	testsupport.MustExist(t, filepath.Join(dir, "a_b_c.txt"))
}

func TestExecutorIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ünïcode.txt")
	testsupport.WriteFile(t, src)

	first := NewExecutor(Options{}, nil)
	if result := first.Run(collectOps(t, false, src)); result.Renamed != 1 {
		t.Fatalf("first run = %+v", result)
	}

	renamed := filepath.Join(dir, "unicode.txt")
	second := NewExecutor(Options{}, nil)
	result := second.Run(collectOps(t, false, renamed))
	if result.Renamed != 0 || result.Skipped != 0 {
		t.Fatalf("second run = %+v", result)
	}
	for _, rec := range second.Records() {
		if rec.State != StateSkippedNoChange {
			t.Fatalf("second run state = %s for %q", rec.State, rec.From)
		}
	}
}

func TestExecutorTracksRenamedAncestors(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "ünïcode-dir")
	child := filepath.Join(parent, "child.txt")
	testsupport.WriteFile(t, child)

	// Both the parent and the child path are separate arguments; the child
	// must resolve under the renamed parent once the parent rename applies.
	e := NewExecutor(Options{}, nil)
	result := e.Run(collectOps(t, false, parent, child))

	if result.Skipped != 0 {
		t.Fatalf("result = %+v, records %+v", result, e.Records())
	}
	testsupport.MustExist(t, filepath.Join(dir, "unicode-dir", "child.txt"))
	testsupport.MustNotExist(t, parent)
}

func TestExecutorCollisionWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ä.txt")
	dst := filepath.Join(dir, "a.txt")
	testsupport.WriteFile(t, src)
	testsupport.WriteFile(t, dst)

	e := NewExecutor(Options{}, nil)
	result := e.Run(collectOps(t, false, src))

	if result.Renamed != 0 || result.Skipped != 1 {
		t.Fatalf("result = %+v", result)
	}
	testsupport.MustExist(t, src)
	testsupport.MustExist(t, dst)

	var found bool
	for _, rec := range e.Records() {
		if rec.State == StateSkippedCollision {
			found = true
			if !errors.Is(rec.Err, ErrCollision) {
				t.Fatalf("collision record err = %v", rec.Err)
			}
		}
	}
	if !found {
		t.Fatalf("no collision record in %+v", e.Records())
	}
}

func TestExecutorCollisionWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ä.txt")
	dst := filepath.Join(dir, "a.txt")
	testsupport.WriteFile(t, src)
	testsupport.WriteFile(t, dst)

	e := NewExecutor(Options{Overwrite: true}, nil)
	result := e.Run(collectOps(t, false, src))

	if result.Renamed != 1 || result.Skipped != 0 {
		t.Fatalf("result = %+v", result)
	}
	testsupport.MustNotExist(t, src)
	testsupport.MustExist(t, dst)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one file, got %d", len(entries))
	}
}

func TestExecutorMissingPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ghost.txt")

	e := NewExecutor(Options{}, nil)
	result := e.Run([]plan.Op{{Source: src, Depth: 1}})

	if result.Renamed != 0 || result.Skipped != 0 {
		t.Fatalf("missing path counted: %+v", result)
	}
	records := e.Records()
	if len(records) != 1 || records[0].State != StateSkippedMissing {
		t.Fatalf("records = %+v", records)
	}
}

func TestExecutorDryRunLeavesFilesystemAlone(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "ünïcode-dir")
	child := filepath.Join(parent, "chïld.txt")
	testsupport.WriteFile(t, child)

	e := NewExecutor(Options{DryRun: true}, nil)
	result := e.Run(collectOps(t, false, parent, child))

	if result.Renamed != 2 || result.Skipped != 0 {
		t.Fatalf("result = %+v, records %+v", result, e.Records())
	}
	testsupport.MustExist(t, child)
	testsupport.MustNotExist(t, filepath.Join(dir, "unicode-dir"))
}

func TestExecutorDryRunMatchesRealRun(t *testing.T) {
	build := func() (string, string, string) {
		dir := t.TempDir()
		parent := filepath.Join(dir, "ünïcode-dir")
		child := filepath.Join(parent, "chïld.txt")
		testsupport.WriteFile(t, child)
		return dir, parent, child
	}

	_, dryParent, dryChild := build()
	dry := NewExecutor(Options{DryRun: true}, nil)
	dry.Run(collectOps(t, false, dryParent, dryChild))

	_, realParent, realChild := build()
	live := NewExecutor(Options{}, nil)
	live.Run(collectOps(t, false, realParent, realChild))

	dryRecords := dry.Records()
	liveRecords := live.Records()
	if len(dryRecords) != len(liveRecords) {
		t.Fatalf("record counts differ: %d vs %d", len(dryRecords), len(liveRecords))
	}
	for i := range dryRecords {
		if dryRecords[i].State != liveRecords[i].State {
			t.Fatalf("state %d differs: %s vs %s", i, dryRecords[i].State, liveRecords[i].State)
		}
	}

	if len(dry.Tracker().Mappings()) != len(live.Tracker().Mappings()) {
		t.Fatal("dry-run tracker diverged from real run")
	}
}

func TestExecutorDryRunDetectsVirtualCollisions(t *testing.T) {
	// Two sources that transliterate to the same name: the second must report
	// a collision in a dry run exactly as it would once the first rename had
	// really happened.
	states := func(dryRun bool) []State {
		dir := t.TempDir()
		first := filepath.Join(dir, "ä.txt")
		second := filepath.Join(dir, "á.txt")
		testsupport.WriteFile(t, first)
		testsupport.WriteFile(t, second)

		e := NewExecutor(Options{DryRun: dryRun}, nil)
		e.Run([]plan.Op{{Source: first, Depth: 1}, {Source: second, Depth: 1}})

		var out []State
		for _, rec := range e.Records() {
			out = append(out, rec.State)
		}
		return out
	}

	dry := states(true)
	live := states(false)
	if len(dry) != len(live) {
		t.Fatalf("record counts differ: %v vs %v", dry, live)
	}
	for i := range dry {
		if dry[i] != live[i] {
			t.Fatalf("state %d differs: dry %s vs real %s", i, dry[i], live[i])
		}
	}
	if dry[0] != StateApplied || dry[1] != StateSkippedCollision {
		t.Fatalf("states = %v, want applied then collision", dry)
	}
}

func TestExecutorCustomPlaceholder(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a|b.txt")
	testsupport.WriteFile(t, src)

	e := NewExecutor(Options{Placeholder: '-'}, nil)
	if result := e.Run(collectOps(t, false, src)); result.Renamed != 1 {
		t.Fatalf("result = %+v", result)
	}
	testsupport.MustExist(t, filepath.Join(dir, "a-b.txt"))
}

type recordingReporter struct {
	records []Record
}

func (r *recordingReporter) Report(rec Record) {
	r.records = append(r.records, rec)
}

func TestExecutorReportsEveryTerminalState(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ünïcode.txt")
	testsupport.WriteFile(t, src)

	reporter := &recordingReporter{}
	e := NewExecutor(Options{Reporter: reporter}, nil)
	e.Run(collectOps(t, false, src))

	if len(reporter.records) != len(e.Records()) {
		t.Fatalf("reporter saw %d records, executor kept %d", len(reporter.records), len(e.Records()))
	}
}
