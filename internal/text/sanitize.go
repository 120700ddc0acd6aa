package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// typographic maps punctuation outside Latin-1 to plain equivalents.
var typographic = strings.NewReplacer(
	"“", "\"", "”", "\"", "„", "\"",
	"‘", "'", "’", "'", "‚", "'",
	"–", "-", "—", "-", "−", "-",
	"…", "...",
	"\u00a0", " ",
	"•", "·",
)

// Sanitize restricts s to ASCII and the Latin-1 supplement. Line breaks and
// tabs become spaces, control characters are dropped, and runes above U+00FF
// fall back to the base letter of their decomposition when there is one.
func Sanitize(s string) string {
	return sanitize(s, false)
}

// SanitizePreformatted is Sanitize but keeps line breaks and expands tabs.
func SanitizePreformatted(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	return sanitize(s, true)
}

func sanitize(s string, keepNewlines bool) string {
	s = typographic.Replace(norm.NFC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' && keepNewlines:
			b.WriteRune(r)
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		case r <= 0xFF:
			b.WriteRune(r)
		default:
			if base, ok := latinBase(r); ok {
				b.WriteRune(base)
			}
		}
	}
	return b.String()
}

// latinBase returns the first rune of the NFD form of r when it is Latin-1.
func latinBase(r rune) (rune, bool) {
	d := norm.NFD.String(string(r))
	for _, c := range d {
		if c <= 0xFF && !unicode.IsControl(c) {
			return c, true
		}
		break
	}
	return 0, false
}

// Encode converts sanitized UTF-8 into the single-byte Windows-1252 form that
// core PDF fonts index their metrics and glyphs by.
func Encode(s string) string {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.String(s)
	if err != nil {
		return s
	}
	return out
}
