package textutil

import "strings"

// DefaultPlaceholder substitutes for shell metacharacters when no placeholder
// is configured.
const DefaultPlaceholder = '_'

// shellHazards are characters that can alter a command line when a filename
// is later used as a shell argument, plus carriage-return and line-feed.
const shellHazards = ";$`|&><'\"\\*?[]()!~#\n\r"

// IsShellHazard reports whether r belongs to the hazardous character set.
func IsShellHazard(r rune) bool {
	return strings.ContainsRune(shellHazards, r)
}

// SanitizeShell replaces every hazardous character in name with placeholder.
// All other characters pass through unchanged, so the mapping is 1:1 and
// applying it twice equals applying it once. name must be a bare filename,
// not a path.
func SanitizeShell(name string, placeholder rune) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if IsShellHazard(r) {
			b.WriteRune(placeholder)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
