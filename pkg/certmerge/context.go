package certmerge

import "certmerge/pkg/certmerge/models"

// BuildAutoContext resolves one row against the detected placeholders:
// the row value under the same canonical label, else the default for
// that label, else empty string. Context keys are the placeholders'
// original spellings, since the renderer matches by exact text. A row
// matching nothing still yields a complete context.
func BuildAutoContext(row models.Row, defaults map[string]string, set *models.PlaceholderSet) map[string]string {
	context := make(map[string]string, len(set.Canonical))
	for _, canonical := range set.Canonical {
		val := row.Value(canonical)
		if val == "" {
			val = defaults[canonical]
		}
		context[set.Original(canonical)] = val
	}
	return context
}

// BuildMappedContext resolves one row against explicit mapping entries:
// the row value under the entry's column (original spelling) if present
// and non-empty, else the entry's literal default, else empty string.
// Context keys are the entries' placeholder text verbatim. Invalid
// entries are skipped.
func BuildMappedContext(row models.Row, entries []MappingEntry) map[string]string {
	context := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		val := ""
		if e.Column != "" {
			val = row.ValueByOriginal(e.Column)
		}
		if val == "" {
			val = e.Default
		}
		context[e.Placeholder] = val
	}
	return context
}
