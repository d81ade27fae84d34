package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"certmerge/pkg/certmerge/models"
)

// MainDocumentPart is the body part of a WordprocessingML package.
const MainDocumentPart = "word/document.xml"

var (
	// strictPlaceholderRE matches {{ LABEL }} with the label restricted
	// to alphanumerics, underscore, hyphen, period, slash, space and
	// accented Latin letters.
	strictPlaceholderRE = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_ÁÉÍÓÚÑÜáéíóúñü\-\./ ]+?)\s*\}\}`)

	// relaxedPlaceholderRE accepts any label characters except braces.
	// Word splits heavily formatted text across runs, which can break
	// the strict alphabet mid-label; the relaxed pattern trades
	// precision for recall. The split-run case itself remains a known
	// limitation of the scan, worked around with manual mappings.
	relaxedPlaceholderRE = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)
)

// IsMergePart reports whether a package part is scanned and rendered:
// the main body plus any header and footer parts.
func IsMergePart(name string) bool {
	if name == MainDocumentPart {
		return true
	}
	if strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml") {
		return true
	}
	if strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml") {
		return true
	}
	return false
}

// ExtractPlaceholders scans a .docx template for {{ ... }} placeholders
// in the body, header and footer parts. It returns the set of canonical
// labels plus the first original spelling seen for each. A template
// with no placeholders yields an empty set, which is a valid outcome.
// Unreadable parts are skipped; an unopenable archive is an error.
func ExtractPlaceholders(docxBytes []byte, relaxed bool) (*models.PlaceholderSet, error) {
	zr, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return nil, fmt.Errorf("open template archive: %w", err)
	}

	re := strictPlaceholderRE
	if relaxed {
		re = relaxedPlaceholderRE
	}

	set := &models.PlaceholderSet{Originals: make(map[string]string)}
	for _, f := range zr.File {
		if !IsMergePart(f.Name) {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			continue
		}
		// Malformed byte sequences are tolerated: the scan works on
		// raw bytes and only valid {{...}} spans are captured.
		for _, m := range re.FindAllStringSubmatch(string(data), -1) {
			original := strings.TrimSpace(m[1])
			canonical := NormalizeKey(original)
			if canonical == "" {
				continue
			}
			if _, seen := set.Originals[canonical]; !seen {
				set.Originals[canonical] = original
				set.Canonical = append(set.Canonical, canonical)
			}
		}
	}
	sort.Strings(set.Canonical)
	return set, nil
}

// ExpandLabels replaces every {{ LABEL }} span in s with resolve(label),
// using the relaxed pattern. Used for user-supplied naming patterns.
func ExpandLabels(s string, resolve func(label string) string) string {
	return relaxedPlaceholderRE.ReplaceAllStringFunc(s, func(m string) string {
		sub := relaxedPlaceholderRE.FindStringSubmatch(m)
		return resolve(strings.TrimSpace(sub[1]))
	})
}

// readZipFile reads a single file from the archive.
func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
