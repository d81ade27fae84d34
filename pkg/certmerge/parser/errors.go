package parser

import "errors"

// ErrInvalidWorkbook indicates the data file is not a readable xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNoHeader indicates the selected sheet has no header row.
var ErrNoHeader = errors.New("sheet has no header row")
