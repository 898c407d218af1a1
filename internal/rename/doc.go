// Package rename applies scheduled operations to the filesystem.
//
// The Tracker keeps an append-only log of completed renames and rewrites any
// later path that lives under a renamed ancestor, so every operation targets
// the current on-disk location rather than the stale original. The Executor
// walks operations in their scheduled order, derives the shell-safe ASCII
// name for each leaf, detects collisions, and performs (or, in dry-run mode,
// merely records) the rename. Per-operation failures accumulate in the run
// result; they never abort the batch.
package rename
