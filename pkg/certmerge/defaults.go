package certmerge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"certmerge/pkg/certmerge/parser"
)

// ParseDefaults reads fallback values in KEY=value form, one pair per
// line. Keys are normalized; lines without "=" are ignored. Values keep
// everything after the first "=" with surrounding whitespace trimmed.
func ParseDefaults(r io.Reader) (map[string]string, error) {
	defaults := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		canonical := parser.NormalizeKey(key)
		if canonical == "" {
			continue
		}
		defaults[canonical] = strings.TrimSpace(val)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}
	return defaults, nil
}

// LoadDefaults reads a defaults file from disk.
func LoadDefaults(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open defaults file: %w", err)
	}
	defer f.Close()
	return ParseDefaults(f)
}
