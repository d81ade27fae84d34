package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"certmerge/pkg/certmerge/models"
	"certmerge/pkg/certmerge/parser"
)

// ContextPDF synthesizes a minimal fixed-layout page directly from one
// render context, bypassing the template: a centered title, the
// person-name value rendered prominently when a context key matches the
// name vocabulary, then every remaining key/value pair as one line,
// paginating when the page fills. This is the zero-dependency fallback
// when no external converter is installed; it keeps the content, not
// the template's visual design.
func ContextPDF(title string, context map[string]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetMargins(20, 25, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	byCanonical := make(map[string]string, len(context))
	for key := range context {
		byCanonical[parser.NormalizeKey(key)] = key
	}
	nameKey := ""
	for _, candidate := range models.NameColumnCandidates {
		if key, ok := byCanonical[candidate]; ok {
			nameKey = key
			break
		}
	}
	if nameKey != "" && context[nameKey] != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.CellFormat(0, 12, tr(context[nameKey]), "", 1, "C", false, 0, "")
		pdf.Ln(6)
	}

	keys := make([]string, 0, len(context))
	for key := range context {
		if key == nameKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return parser.NormalizeKey(keys[i]) < parser.NormalizeKey(keys[j])
	})

	pdf.SetFont("Helvetica", "", 12)
	for _, key := range keys {
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%s: %s", key, context[key])), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
