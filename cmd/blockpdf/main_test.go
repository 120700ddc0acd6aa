package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"blocks": [
  {"type": "header", "data": {"text": "Hello", "level": 1}},
  {"type": "paragraph", "data": {"text": "World"}}
]}`

func execute(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout, stderr, err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestWritesPDFToStdout(t *testing.T) {
	stdout, _, err := execute(t, writeFile(t, "doc.json", doc))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("%PDF-")))
}

func TestWritesOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	stdout, _, err := execute(t, writeFile(t, "doc.json", doc), "-o", out)
	require.NoError(t, err)
	assert.Zero(t, stdout.Len())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRequiresExactlyOneArgument(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
	_, _, err = execute(t, "a.json", "b.json")
	assert.Error(t, err)
}

func TestFatalDocumentErrors(t *testing.T) {
	stdout, _, err := execute(t, writeFile(t, "doc.json", `{"blocks": []}`))
	assert.ErrorIs(t, err, document.ErrNoBlocks)
	assert.Zero(t, stdout.Len())

	_, _, err = execute(t, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, writeFile(t, "doc.json", doc), "-v")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("%PDF-")), "logs never reach stdout")
	assert.Contains(t, stderr.String(), "layout complete")
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := writeFile(t, "blockpdf.toml", "[page]\nsize = \"Letter\"\nmargin = 40\n[image]\ndefault_dpi = 150\n")
	cmd := newRootCmd(new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, cmd.ParseFlags([]string{"-c", cfg, "--margin", "30", "--title", "T"}))

	f := flags{config: cfg, margin: 30, title: "T", pageSize: "A4", dpi: 96, format: "pdf"}
	o, err := resolveOptions(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, float64(api.PageSizeLetterWidth), o.PageWidth, "unset flags keep config values")
	assert.Equal(t, 30.0, o.Margin)
	assert.Equal(t, 150.0, o.DefaultDPI)
	assert.Equal(t, "T", o.Title)
}

func TestRejectsBadFlags(t *testing.T) {
	input := writeFile(t, "doc.json", doc)
	_, _, err := execute(t, input, "--page-size", "B9")
	assert.Error(t, err)
	_, _, err = execute(t, input, "--dpi", "0")
	assert.Error(t, err)
	_, _, err = execute(t, input, "--margin", "400")
	assert.Error(t, err)
}
