// Package models defines data structures for the mail-merge pipeline.
package models

// Column represents a spreadsheet column header.
type Column struct {
	// Original is the header text as written in the sheet.
	Original string `json:"original"`
	// Canonical is the normalized form used for matching.
	Canonical string `json:"canonical"`
}

// Row represents one data row with values addressable both ways.
type Row struct {
	// Index is the 1-based data row number (header row excluded).
	Index int `json:"index"`
	// ByCanonical maps normalized column header to cell value.
	ByCanonical map[string]string `json:"-"`
	// ByOriginal maps the original column header to cell value.
	ByOriginal map[string]string `json:"-"`
}

// Value returns the cell value for a normalized column header.
func (r Row) Value(canonical string) string {
	return r.ByCanonical[canonical]
}

// ValueByOriginal returns the cell value for an original column header.
func (r Row) ValueByOriginal(original string) string {
	return r.ByOriginal[original]
}

// Table represents one sheet of per-recipient data.
type Table struct {
	// SheetName is the sheet the table was loaded from.
	SheetName string `json:"sheet_name"`
	// Columns lists headers in sheet order.
	Columns []Column `json:"columns"`
	// Rows contains the data rows in sheet order.
	Rows []Row `json:"rows"`
}

// HasColumn reports whether a column with the given canonical header exists.
func (t *Table) HasColumn(canonical string) bool {
	for _, c := range t.Columns {
		if c.Canonical == canonical {
			return true
		}
	}
	return false
}
