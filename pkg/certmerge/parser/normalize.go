package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeKey converts a label (placeholder name or column header)
// into its canonical comparison form: trimmed, internal whitespace
// collapsed, accents stripped, uppercased. Idempotent.
func NormalizeKey(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.ToUpper(stripAccents(s))
}

// stripAccents removes combining marks after NFKD decomposition, so
// accented letters compare equal to their base letters. Transformers
// are stateful, so the chain is built per call.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
