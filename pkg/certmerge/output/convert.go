package output

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// converterTools are the external binaries probed for docx-to-pdf
// conversion, in preference order.
var converterTools = []string{"docx2pdf", "soffice", "libreoffice"}

// ConverterHint is the user-facing remediation message shown when no
// conversion tool is available.
const ConverterHint = "PDF conversion is unavailable: install Microsoft Word " +
	"(docx2pdf) on Windows/macOS, or LibreOffice (soffice) on Linux, and make " +
	"sure the tool is on the PATH"

// CanConvertPDF reports whether any external conversion tool is
// reachable, so callers can disable the conversion path up front
// instead of failing per row.
func CanConvertPDF() bool {
	for _, tool := range converterTools {
		if _, err := exec.LookPath(tool); err == nil {
			return true
		}
	}
	return false
}

// ConvertToPDF converts a rendered .docx into a fixed-layout PDF at
// outputPDF. It tries docx2pdf first, then a headless LibreOffice run.
// Both attempts are best-effort: an unavailable or failing tool yields
// (false, nil) and the caller decides how to degrade.
func ConvertToPDF(inputDocx, outputPDF string) (bool, error) {
	if path, err := exec.LookPath("docx2pdf"); err == nil {
		if exec.Command(path, inputDocx, outputPDF).Run() == nil {
			if _, err := os.Stat(outputPDF); err == nil {
				return true, nil
			}
		}
	}

	soffice := ""
	for _, name := range []string{"soffice", "libreoffice"} {
		if p, err := exec.LookPath(name); err == nil {
			soffice = p
			break
		}
	}
	if soffice == "" {
		return false, nil
	}

	outdir := filepath.Dir(outputPDF)
	cmd := exec.Command(soffice, "--headless", "--convert-to", "pdf", "--outdir", outdir, inputDocx)
	if err := cmd.Run(); err != nil {
		return false, nil
	}

	// LibreOffice names the output after the input; move it into place.
	produced := filepath.Join(outdir, convertedName(inputDocx))
	if produced != outputPDF {
		if err := os.Rename(produced, outputPDF); err != nil {
			return false, nil
		}
	}
	if _, err := os.Stat(outputPDF); err != nil {
		return false, nil
	}
	return true, nil
}

// convertedName returns the file name LibreOffice produces for an
// input document: same base name with a .pdf extension.
func convertedName(inputPath string) string {
	base := filepath.Base(inputPath)
	return fmt.Sprintf("%s.pdf", strings.TrimSuffix(base, filepath.Ext(base)))
}
