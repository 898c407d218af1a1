package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

func isSeparator(r rune) bool {
	return r == '/' || r == os.PathSeparator
}

func isSeparatorByte(b byte) bool {
	return b == '/' || os.IsPathSeparator(b)
}

// isDrive reports whether a component is a two-character drive-letter prefix
// such as "C:".
func isDrive(comp string) bool {
	return len(comp) == 2 && comp[1] == ':'
}

// isRoot reports whether a component is a root separator marker.
func isRoot(comp string) bool {
	for i := 0; i < len(comp); i++ {
		if !isSeparatorByte(comp[i]) {
			return false
		}
	}
	return comp != ""
}

// TrimTrailingSeparators removes trailing path separators from p without ever
// reducing a bare root ("/") or a drive root ("C:\") to nothing.
func TrimTrailingSeparators(p string) string {
	for len(p) > 1 && isSeparatorByte(p[len(p)-1]) {
		rest := p[:len(p)-1]
		if rest == filepath.VolumeName(p) {
			break
		}
		p = rest
	}
	return p
}

// Components splits p into its path elements. An absolute path yields the
// root separator as its first element and a drive prefix is an element of its
// own. Unlike filepath.Clean-based splitting, "." and ".." are kept in place.
func Components(p string) []string {
	if p == "" {
		return nil
	}

	var comps []string
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]
	if vol != "" {
		comps = append(comps, vol)
	}
	if len(rest) > 0 && isSeparatorByte(rest[0]) {
		comps = append(comps, string(os.PathSeparator))
	}
	for _, seg := range strings.FieldsFunc(rest, isSeparator) {
		comps = append(comps, seg)
	}
	return comps
}

// Join appends name to base with a single separator, without cleaning the
// result. A base that already ends in a separator (a root) is extended
// directly.
func Join(base, name string) string {
	if base == "" {
		return name
	}
	if isSeparatorByte(base[len(base)-1]) {
		return base + name
	}
	return base + string(os.PathSeparator) + name
}

// RenameableComponents returns the cumulative sub-paths of p whose trailing
// component is eligible for renaming. Root markers, "." and "..", and drive
// prefixes contribute to the cumulative path but are not themselves returned.
// The result is ordered deepest first; a bare root or drive-only input yields
// nothing.
func RenameableComponents(p string) []string {
	var result []string
	current := ""
	for _, comp := range Components(p) {
		if isRoot(comp) || isDrive(comp) {
			current += comp
			continue
		}
		current = Join(current, comp)
		if comp == "." || comp == ".." {
			continue
		}
		result = append(result, current)
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// HasPrefix reports whether prefix matches the leading path components of p.
func HasPrefix(p, prefix string) bool {
	pc := Components(p)
	fc := Components(prefix)
	if len(fc) == 0 || len(fc) > len(pc) {
		return false
	}
	for i := range fc {
		if pc[i] != fc[i] {
			return false
		}
	}
	return true
}

// Rebase replaces the from prefix of p with to, keeping the remaining suffix
// components unchanged. The second return value reports whether from was a
// component-wise prefix of p; when it is not, p is returned as given.
func Rebase(p, from, to string) (string, bool) {
	pc := Components(p)
	fc := Components(from)
	if len(fc) == 0 || len(fc) > len(pc) {
		return p, false
	}
	for i := range fc {
		if pc[i] != fc[i] {
			return p, false
		}
	}
	out := to
	for _, comp := range pc[len(fc):] {
		out = Join(out, comp)
	}
	return out, true
}
