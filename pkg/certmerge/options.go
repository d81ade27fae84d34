// Package certmerge generates one document per spreadsheet row from a
// .docx template with {{ PLACEHOLDER }} substitution points, bundling
// the outputs into a single zip archive.
package certmerge

import "fmt"

// Format selects the output document format.
type Format string

const (
	// FormatDOCX archives one rendered .docx per row.
	FormatDOCX Format = "docx"
	// FormatPDF archives one fixed-layout .pdf per row.
	FormatPDF Format = "pdf"
)

// PDFMode selects how PDFs are produced when Format is FormatPDF.
type PDFMode string

const (
	// PDFModeAuto uses the external converter when one is installed and
	// falls back to the native page renderer otherwise.
	PDFModeAuto PDFMode = "auto"
	// PDFModeConvert requires the external converter (docx2pdf or a
	// headless LibreOffice run).
	PDFModeConvert PDFMode = "convert"
	// PDFModeNative always synthesizes pages from the context, without
	// external tools and without the template's visual design.
	PDFModeNative PDFMode = "native"
)

// Options configures a generation run.
type Options struct {
	// Format is the output document format.
	Format Format
	// PDFMode selects the PDF production path; ignored for FormatDOCX.
	PDFMode PDFMode
	// NameColumn is the original spelling of the column used to name
	// output files. Empty means auto-detect against the person-name
	// vocabulary, falling back to the first column.
	NameColumn string
	// NamePattern names output files by substituting {{ PLACEHOLDER }}
	// labels with row values, e.g. "{{NOMBRE}} - Diploma". Empty means
	// "<name-column value> - Certificado".
	NamePattern string
	// Relaxed switches the placeholder scan to accept any label
	// characters except braces.
	Relaxed bool
	// FailFast aborts the batch on the first row failure instead of
	// skipping and reporting it.
	FailFast bool
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		Format:  FormatDOCX,
		PDFMode: PDFModeAuto,
	}
}

// Validate checks that format and mode values are known.
func (o Options) Validate() error {
	switch o.Format {
	case FormatDOCX, FormatPDF:
	default:
		return fmt.Errorf("invalid format: %q (must be docx or pdf)", o.Format)
	}
	switch o.PDFMode {
	case PDFModeAuto, PDFModeConvert, PDFModeNative:
	default:
		return fmt.Errorf("invalid pdf mode: %q (must be auto, convert, or native)", o.PDFMode)
	}
	return nil
}

// Extension returns the file extension for the configured format.
func (o Options) Extension() string {
	if o.Format == FormatPDF {
		return ".pdf"
	}
	return ".docx"
}
