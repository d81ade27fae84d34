package certmerge

import (
	"regexp"
	"strings"
)

// FallbackFilename replaces a name that sanitizes down to nothing.
const FallbackFilename = "documento"

const maxFilenameRunes = 200

var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeFilename makes an arbitrary string safe to use as a file
// name: reserved and control characters become underscores, surrounding
// whitespace and trailing dots are trimmed, the result is capped at 200
// runes, and an empty result becomes "documento". Never fails.
func SanitizeFilename(name string) string {
	name = illegalFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	name = strings.Trim(name, ".")
	if name == "" {
		return FallbackFilename
	}
	if r := []rune(name); len(r) > maxFilenameRunes {
		name = string(r[:maxFilenameRunes])
	}
	return name
}
