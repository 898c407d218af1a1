// Package config loads, normalizes, and validates ascii-rename configuration.
//
// It supplies repository defaults, expands tilde shortcuts in paths, reads an
// optional TOML file, and rejects unusable values (unknown log levels, a
// placeholder that is itself a shell hazard) with clear errors. Flags set on
// the command line always win over file values; the file only moves defaults.
package config
