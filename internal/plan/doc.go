// Package plan collects rename targets from path arguments and orders them
// for execution.
//
// Every argument (and, with recursion enabled, every child discovered under
// it) is decomposed into cumulative sub-paths; each sub-path becomes one
// operation carrying a depth derived from its nesting position. Ops sorts the
// collected operations deepest first with a stable sort and removes duplicate
// source paths, keeping the deepest-priority occurrence. Processing deepest
// paths first is what keeps child paths valid while their original parent
// directory names still exist on disk.
package plan
