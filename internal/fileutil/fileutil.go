// Package fileutil provides the small filesystem predicates the rename
// executor depends on.
package fileutil

import "os"

// Exists reports whether path refers to an entry, without following a
// trailing symlink.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// SameEntry reports whether a and b refer to the same underlying filesystem
// entry, e.g. two spellings aliased by a case-insensitive filesystem. Both
// paths must exist.
func SameEntry(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
