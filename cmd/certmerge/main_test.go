package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "plantilla.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func writeWorkbook(t *testing.T, headers []string) string {
	t.Helper()
	f := excelize.NewFile()
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	path := filepath.Join(t.TempDir(), "datos.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func resetFlags() {
	relaxed = false
	jsonOutput = false
	dataPath = ""
	sheetName = ""
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestPlaceholdersCommand(t *testing.T) {
	tmpl := writeTemplate(t, `<w:t>{{NOMBRE}} {{CURSO}}</w:t>`)

	out := execute(t, "placeholders", tmpl)
	require.Contains(t, out, "NOMBRE")
	require.Contains(t, out, "CURSO")
	require.NotContains(t, out, "Columns found for")
}

func TestPlaceholdersCommandWithData(t *testing.T) {
	tmpl := writeTemplate(t, `<w:t>{{Nombre}} {{CURSO}}</w:t>`)
	data := writeWorkbook(t, []string{"NOMBRE", "Fecha"})

	out := execute(t, "placeholders", tmpl, "--data", data)
	require.Contains(t, out, "Columns found for: Nombre")
	require.Contains(t, out, "Columns missing for: CURSO")
}

func TestPlaceholdersCommandWithDataJSON(t *testing.T) {
	tmpl := writeTemplate(t, `<w:t>{{NOMBRE}} {{CURSO}}</w:t>`)
	data := writeWorkbook(t, []string{"Nombre"})

	out := execute(t, "placeholders", tmpl, "--data", data, "--json")

	var payload struct {
		Canonical []string `json:"canonical"`
		Match     *struct {
			Matched []string `json:"matched"`
			Missing []string `json:"missing"`
		} `json:"match"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.NotNil(t, payload.Match)
	require.Equal(t, []string{"NOMBRE"}, payload.Match.Matched)
	require.Equal(t, []string{"CURSO"}, payload.Match.Missing)
}

func TestSheetsCommand(t *testing.T) {
	data := writeWorkbook(t, []string{"Nombre"})

	out := execute(t, "sheets", data)
	require.Contains(t, out, "Sheet1")
}
