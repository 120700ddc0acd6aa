package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockpdf.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[page]
size = "letter"
margin = 36

[image]
default_dpi = 300
max_width = 200

[metadata]
title = "Quarterly report"
author = "Finance"

[output]
format = "docx"
office = ["soffice"]
compression = false

[assets]
paths = ["./icons"]
`)
	o, err := LoadConfig(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, float64(PageSizeLetterWidth), o.PageWidth)
	assert.Equal(t, float64(PageSizeLetterHeight), o.PageHeight)
	assert.Equal(t, 36.0, o.Margin)
	assert.Equal(t, 300.0, o.DefaultDPI)
	assert.Equal(t, 200.0, o.MaxImageWidth)
	assert.Equal(t, DefaultOptions().MaxImageHeight, o.MaxImageHeight, "absent keys keep the base value")
	assert.Equal(t, "Quarterly report", o.Title)
	assert.Equal(t, "Finance", o.Author)
	assert.Equal(t, "docx", o.Format)
	assert.Equal(t, []string{"soffice"}, o.OfficeCandidates)
	assert.True(t, o.NoCompression)
	assert.Equal(t, []string{"./icons"}, o.ResourcePaths)
}

func TestLoadConfigExplicitSize(t *testing.T) {
	path := writeConfig(t, "[page]\nwidth = 400\nheight = 600\n")
	o, err := LoadConfig(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 400.0, o.PageWidth)
	assert.Equal(t, 600.0, o.PageHeight)
	assert.Equal(t, pagination.DefaultMargin, o.Margin)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[page]\ncolour = \"red\"\n"},
		{"unknown section", "[fonts]\ndir = \"x\"\n"},
		{"unknown page size", "[page]\nsize = \"B7\"\n"},
		{"margin too large", "[page]\nmargin = 400\n"},
		{"bad dpi", "[image]\ndefault_dpi = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), DefaultOptions())
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := LoadConfig(writeConfig(t, "[page\n"), DefaultOptions())
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
