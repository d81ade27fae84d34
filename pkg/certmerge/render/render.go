// Package render substitutes a resolved context into a .docx template.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"certmerge/pkg/certmerge/parser"
)

// Document renders one output document: every {{ KEY }} whose KEY is a
// context key (exact original spelling, internal delimiter whitespace
// flexible) is replaced with the XML-escaped value in the body, header
// and footer parts. Placeholders absent from the context are left as
// literal text, and substitution is a single pass: a substituted value
// containing {{...}} itself is never re-substituted. All other package
// parts are copied verbatim.
func Document(templateBytes []byte, context map[string]string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(templateBytes), int64(len(templateBytes)))
	if err != nil {
		return nil, fmt.Errorf("open template archive: %w", err)
	}

	re := contextPattern(context)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}

		if re != nil && parser.IsMergePart(f.Name) {
			data = []byte(re.ReplaceAllStringFunc(string(data), func(m string) string {
				label := re.FindStringSubmatch(m)[1]
				return escapeXML(context[label])
			}))
		}

		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("write part %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write part %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize document: %w", err)
	}
	return buf.Bytes(), nil
}

// contextPattern compiles one alternation over all context keys, so
// every part is rewritten in a single deterministic pass. Returns nil
// for an empty context.
func contextPattern(context map[string]string) *regexp.Regexp {
	if len(context) == 0 {
		return nil
	}
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	alts := make([]string, len(keys))
	for i, key := range keys {
		alts[i] = regexp.QuoteMeta(key)
	}
	return regexp.MustCompile(`\{\{\s*(` + strings.Join(alts, "|") + `)\s*\}\}`)
}

func escapeXML(s string) string {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
