// Package textutil produces shell-safe ASCII filenames.
//
// Transliterate maps Unicode text to a best-effort ASCII approximation using
// the anyascii table, growing its output as fragments accumulate so that
// multi-character romanizations never overrun a fixed buffer. SanitizeShell
// then replaces characters that are hazardous when the name is later used as
// a shell argument. Both operate on bare names, never on full paths.
package textutil
