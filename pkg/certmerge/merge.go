package certmerge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"certmerge/pkg/certmerge/models"
	"certmerge/pkg/certmerge/output"
	"certmerge/pkg/certmerge/parser"
	"certmerge/pkg/certmerge/render"
)

// defaultNameSuffix is appended to the naming-column value when no
// custom name pattern is given.
const defaultNameSuffix = " - Certificado"

// Result reports one generation run.
type Result struct {
	// Archive is the finished zip.
	Archive []byte
	// Entries lists archive entry names in generation order.
	Entries []string
	// Placeholders is the set detected in the template (nil when
	// manual mappings were used).
	Placeholders *models.PlaceholderSet
	// RowErrors holds the rows skipped under the skip-and-report policy.
	RowErrors []*RowError
	// ConverterUsed reports that the external converter produced the PDFs.
	ConverterUsed bool
	// NativeFallback reports that PDFs came from the native page renderer.
	NativeFallback bool
}

// Generator runs the whole per-row pipeline: context building,
// rendering, optional PDF conversion and archive packaging.
type Generator struct {
	opts Options
	log  *zap.Logger
}

// NewGenerator returns a Generator. A nil logger disables logging.
func NewGenerator(opts Options, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{opts: opts, log: logger}
}

// Generate produces one output document per table row and bundles them
// into a zip. When valid manual mappings are given they drive context
// building; otherwise placeholders are auto-detected in the template
// and matched against columns by canonical form. Row failures are
// skipped and reported in the Result unless FailFast is set.
func (g *Generator) Generate(template []byte, table *models.Table, defaults map[string]string, mappings []MappingEntry) (*Result, error) {
	if err := g.opts.Validate(); err != nil {
		return nil, err
	}
	mappings = ValidMappings(mappings)
	manual := len(mappings) > 0

	result := &Result{}

	var set *models.PlaceholderSet
	if !manual {
		var err error
		set, err = parser.ExtractPlaceholders(template, g.opts.Relaxed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
		if set.Empty() {
			g.log.Info("no placeholders detected; outputs will be verbatim copies")
		}
		result.Placeholders = set
	}

	useConverter := false
	if g.opts.Format == FormatPDF {
		switch g.opts.PDFMode {
		case PDFModeConvert:
			if !output.CanConvertPDF() {
				return nil, fmt.Errorf("%w: %s", ErrNoConverter, output.ConverterHint)
			}
			useConverter = true
		case PDFModeAuto:
			useConverter = output.CanConvertPDF()
			if !useConverter {
				g.log.Warn("no external converter found, using native page renderer")
			}
		}
		result.NativeFallback = !useConverter
	}

	workDir := ""
	if useConverter {
		dir, err := os.MkdirTemp("", "certmerge-")
		if err != nil {
			return nil, fmt.Errorf("create work dir: %w", err)
		}
		defer os.RemoveAll(dir)
		workDir = dir
	}

	nameCol := g.opts.NameColumn
	if nameCol != "" {
		nameCol = parser.NormalizeKey(nameCol)
	} else {
		nameCol = DetectNameColumn(table)
	}

	archive := output.NewArchive()
	used := make(map[string]bool, len(table.Rows))

	for _, row := range table.Rows {
		var context map[string]string
		if manual {
			context = BuildMappedContext(row, mappings)
		} else {
			context = BuildAutoContext(row, defaults, set)
		}

		name := g.entryName(row, defaults, nameCol, used)

		data, err := g.renderRow(template, context, name, workDir, useConverter, result)
		if err != nil {
			rowErr := &RowError{Row: row.Index, Name: name, Err: err}
			if g.opts.FailFast {
				return nil, rowErr
			}
			result.RowErrors = append(result.RowErrors, rowErr)
			g.log.Warn("row skipped", zap.Int("row", row.Index), zap.Error(err))
			continue
		}

		if err := archive.Add(name, data); err != nil {
			return nil, err
		}
		g.log.Debug("row rendered", zap.Int("row", row.Index), zap.String("entry", name))
	}

	data, err := archive.Close()
	if err != nil {
		return nil, err
	}
	result.Archive = data
	result.Entries = archive.Entries()
	return result, nil
}

// entryName computes a unique archive entry name for one row.
func (g *Generator) entryName(row models.Row, defaults map[string]string, nameCol string, used map[string]bool) string {
	ext := g.opts.Extension()

	var base string
	if g.opts.NamePattern != "" {
		base = SanitizeFilename(parser.ExpandLabels(g.opts.NamePattern, func(label string) string {
			canonical := parser.NormalizeKey(label)
			if v := row.Value(canonical); v != "" {
				return v
			}
			return defaults[canonical]
		}))
	} else if val := row.Value(nameCol); val != "" {
		base = SanitizeFilename(val) + defaultNameSuffix
	} else {
		base = fmt.Sprintf("%s_%d%s", FallbackFilename, row.Index, defaultNameSuffix)
	}

	name := base + ext
	if used[name] {
		// The packager does not deduplicate; disambiguate here.
		name = fmt.Sprintf("%s_%d%s", base, row.Index, ext)
	}
	used[name] = true
	return name
}

// renderRow produces the output bytes for one row in the configured
// format.
func (g *Generator) renderRow(template []byte, context map[string]string, name, workDir string, useConverter bool, result *Result) ([]byte, error) {
	if g.opts.Format == FormatDOCX {
		data, err := render.Document(template, context)
		if err != nil {
			return nil, &TemplateError{Err: err}
		}
		return data, nil
	}

	base := strings.TrimSuffix(name, g.opts.Extension())
	if !useConverter {
		return output.ContextPDF(base, context)
	}

	data, err := render.Document(template, context)
	if err != nil {
		return nil, &TemplateError{Err: err}
	}
	docxPath := filepath.Join(workDir, base+".docx")
	pdfPath := filepath.Join(workDir, base+".pdf")
	if err := os.WriteFile(docxPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write intermediate docx: %w", err)
	}
	ok, err := output.ConvertToPDF(docxPath, pdfPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoConverter, output.ConverterHint)
	}
	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("read converted pdf: %w", err)
	}
	result.ConverterUsed = true
	return pdfData, nil
}
