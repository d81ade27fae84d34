package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"certmerge/pkg/certmerge/models"
)

// ListSheets returns the sheet names of a workbook in file order.
func ListSheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// LoadTable reads one sheet into a Table. All cell values are treated
// as text; empty cells become empty strings and short rows are padded
// to the header width. Sheet name "" selects the first sheet.
func LoadTable(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoHeader, sheet)
	}

	table := &models.Table{SheetName: sheet}
	for _, header := range rows[0] {
		table.Columns = append(table.Columns, models.Column{
			Original:  header,
			Canonical: NormalizeKey(header),
		})
	}

	for i, cells := range rows[1:] {
		row := models.Row{
			Index:       i + 1,
			ByCanonical: make(map[string]string, len(table.Columns)),
			ByOriginal:  make(map[string]string, len(table.Columns)),
		}
		for c, col := range table.Columns {
			val := ""
			if c < len(cells) {
				val = cells[c]
			}
			row.ByOriginal[col.Original] = val
			// First occurrence wins when two headers share a
			// canonical form, mirroring placeholder extraction.
			if col.Canonical != "" {
				if _, dup := row.ByCanonical[col.Canonical]; !dup {
					row.ByCanonical[col.Canonical] = val
				}
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
