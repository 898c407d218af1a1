package textutil

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	anyascii "github.com/anyascii/go"
	"golang.org/x/text/unicode/norm"
)

// Transliterate converts s into a best-effort ASCII string. Each codepoint is
// replaced by its anyascii fragment, which may be empty or several characters
// long (a single ideograph commonly expands to a multi-letter romanization).
// Invalid UTF-8 byte sequences are skipped one byte at a time so decoding
// resynchronizes on the next valid sequence instead of aborting.
//
// The output accumulates in a growable buffer; the produced length is checked
// against the sum of the fragment lengths and every byte is verified ASCII,
// so a fragment table anomaly surfaces as an error rather than garbage.
func Transliterate(s string) (string, error) {
	s = norm.NFC.String(s)

	var buf bytes.Buffer
	buf.Grow(len(s))
	expected := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		frag := anyascii.TransliterateRune(r)
		expected += len(frag)
		buf.WriteString(frag)
		i += size
	}

	out := buf.String()
	if len(out) != expected {
		return "", fmt.Errorf("transliterate: produced %d bytes, expected %d", len(out), expected)
	}
	for i := 0; i < len(out); i++ {
		if out[i] >= utf8.RuneSelf {
			return "", fmt.Errorf("transliterate: non-ascii byte %#x at offset %d", out[i], i)
		}
	}
	return out, nil
}
