package certmerge

import "certmerge/pkg/certmerge/models"

// MatchReport lists which template placeholders have a matching
// spreadsheet column (by canonical form) and which do not. Uncovered
// placeholders are not an error: defaults or mappings can fill them.
type MatchReport struct {
	// Matched holds original spellings of placeholders with a column.
	Matched []string `json:"matched"`
	// Missing holds original spellings of placeholders without one.
	Missing []string `json:"missing"`
}

// MatchColumns compares the placeholder set against a table's columns.
func MatchColumns(set *models.PlaceholderSet, table *models.Table) MatchReport {
	var report MatchReport
	for _, canonical := range set.Canonical {
		if table.HasColumn(canonical) {
			report.Matched = append(report.Matched, set.Original(canonical))
		} else {
			report.Missing = append(report.Missing, set.Original(canonical))
		}
	}
	return report
}

// DetectNameColumn picks the column whose values name the output files:
// the first header matching the person-name vocabulary, else the first
// column. Returns the canonical header, or "" for an empty table.
func DetectNameColumn(table *models.Table) string {
	for _, col := range table.Columns {
		for _, candidate := range models.NameColumnCandidates {
			if col.Canonical == candidate {
				return col.Canonical
			}
		}
	}
	if len(table.Columns) > 0 {
		return table.Columns[0].Canonical
	}
	return ""
}
