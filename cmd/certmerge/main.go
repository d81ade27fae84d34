// Package main provides the CLI entry point for certmerge.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"certmerge/pkg/certmerge"
	"certmerge/pkg/certmerge/models"
	"certmerge/pkg/certmerge/parser"
)

var (
	relaxed    bool
	jsonOutput bool

	templatePath string
	dataPath     string
	sheetName    string
	defaultsPath string
	mappingPath  string
	formatName   string
	pdfMode      string
	nameColumn   string
	namePattern  string
	outputPath   string
	failFast     bool
	verbose      bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "certmerge",
		Short: "Mass-generate documents from a .docx template and a spreadsheet",
		Long: `certmerge renders one document per spreadsheet row by substituting
{{ PLACEHOLDER }} labels in a .docx template, optionally converting each
output to PDF, and bundles everything into a single zip archive.

Placeholder labels and column headers are matched case- and
accent-insensitively, so {{NOMBRE}} finds a column named "Nombre".`,
	}

	placeholdersCmd := &cobra.Command{
		Use:   "placeholders [template.docx]",
		Short: "List the placeholders detected in a template",
		Long: `List the placeholders detected in a template. When --data is given
the workbook headers are matched against them and each placeholder is
reported as covered by a column or missing.`,
		Args: cobra.ExactArgs(1),
		RunE: runPlaceholders,
	}
	placeholdersCmd.Flags().BoolVar(&relaxed, "relaxed", false, "Accept any placeholder characters except braces")
	placeholdersCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	placeholdersCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Spreadsheet .xlsx path to match placeholders against")
	placeholdersCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [data.xlsx]",
		Short: "List the sheet names of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one document per data row and bundle them into a zip",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template .docx path (required)")
	generateCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Spreadsheet .xlsx path (required)")
	generateCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")
	generateCmd.Flags().StringVar(&defaultsPath, "defaults", "", "Defaults file, one KEY=value per line")
	generateCmd.Flags().StringVar(&mappingPath, "mapping", "", "Manual mapping YAML file (disables auto-matching)")
	generateCmd.Flags().StringVarP(&formatName, "format", "f", "docx", "Output format: docx or pdf")
	generateCmd.Flags().StringVar(&pdfMode, "pdf-mode", "auto", "PDF path: auto, convert, or native")
	generateCmd.Flags().StringVar(&nameColumn, "name-column", "", "Column naming the output files (default: auto-detect)")
	generateCmd.Flags().StringVar(&namePattern, "name-pattern", "", `File name pattern, e.g. "{{NOMBRE}} - Diploma"`)
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output zip path (default: certificados_<format>.zip)")
	generateCmd.Flags().BoolVar(&relaxed, "relaxed", false, "Accept any placeholder characters except braces")
	generateCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first row failure instead of skipping it")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	generateCmd.MarkFlagRequired("template")
	generateCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(placeholdersCmd, sheetsCmd, generateCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlaceholders(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	set, err := parser.ExtractPlaceholders(data, relaxed)
	if err != nil {
		return fmt.Errorf("scan template: %w", err)
	}

	var table *models.Table
	var report *certmerge.MatchReport
	if dataPath != "" {
		if table, err = parser.LoadTable(dataPath, sheetName); err != nil {
			return fmt.Errorf("read data: %w", err)
		}
		r := certmerge.MatchColumns(set, table)
		report = &r
	}

	if jsonOutput {
		payload := struct {
			*models.PlaceholderSet
			Match *certmerge.MatchReport `json:"match,omitempty"`
		}{set, report}
		enc, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(enc))
		return nil
	}

	if set.Empty() {
		fmt.Fprintln(out, "No {{...}} placeholders detected; generation would produce verbatim copies.")
		return nil
	}
	for _, canonical := range set.Canonical {
		fmt.Fprintln(out, set.Original(canonical))
	}
	if report != nil {
		printMatchReport(out, *report)
	}
	return nil
}

func printMatchReport(out io.Writer, report certmerge.MatchReport) {
	if len(report.Matched) > 0 {
		fmt.Fprintf(out, "Columns found for: %s\n", strings.Join(report.Matched, ", "))
	}
	if len(report.Missing) > 0 {
		fmt.Fprintf(out, "Columns missing for: %s (cover them with defaults or mappings)\n",
			strings.Join(report.Missing, ", "))
	}
}

func runSheets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	sheets, err := parser.ListSheets(args[0])
	if err != nil {
		return err
	}
	for _, s := range sheets {
		fmt.Fprintln(out, s)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer dev.Sync()
		logger = dev
	}

	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	table, err := parser.LoadTable(dataPath, sheetName)
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}

	defaults := map[string]string{}
	if defaultsPath != "" {
		if defaults, err = certmerge.LoadDefaults(defaultsPath); err != nil {
			return err
		}
	}

	var mappings []certmerge.MappingEntry
	if mappingPath != "" {
		if mappings, err = certmerge.LoadMappings(mappingPath); err != nil {
			return err
		}
	}

	opts := certmerge.DefaultOptions()
	opts.Format = certmerge.Format(formatName)
	opts.PDFMode = certmerge.PDFMode(pdfMode)
	opts.NameColumn = nameColumn
	opts.NamePattern = namePattern
	opts.Relaxed = relaxed
	opts.FailFast = failFast

	gen := certmerge.NewGenerator(opts, logger)
	result, err := gen.Generate(template, table, defaults, mappings)
	if err != nil {
		return err
	}

	if result.Placeholders != nil {
		printMatchReport(out, certmerge.MatchColumns(result.Placeholders, table))
	}
	for _, rowErr := range result.RowErrors {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", rowErr)
	}
	if result.NativeFallback {
		fmt.Fprintln(out, "No external converter found; PDFs were synthesized from the data only.")
	}

	archivePath := outputPath
	if archivePath == "" {
		archivePath = fmt.Sprintf("certificados_%s.zip", formatName)
	}
	if err := os.WriteFile(archivePath, result.Archive, 0644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	fmt.Fprintf(out, "Wrote %d document(s) to %s\n", len(result.Entries), archivePath)
	return nil
}
