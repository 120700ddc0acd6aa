// Package convert transcodes rendered PDFs into other formats with a
// headless office suite.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrConversionFailed is returned when no candidate produced output.
	ErrConversionFailed = errors.New("conversion failed")
	// ErrNoConverter is returned when a candidate is not on PATH.
	ErrNoConverter = errors.New("converter not found")
)

// FormatPDF is passed through without conversion.
const FormatPDF = "pdf"

// DefaultCandidates are tried in order.
var DefaultCandidates = []string{"libreoffice", "soffice"}

// RunFunc runs a command and returns its combined output.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Office converts documents by running `<candidate> --headless --convert-to`.
type Office struct {
	Candidates []string
	Timeout    time.Duration
	Logger     *log.Logger

	// LookPath and Run default to the os/exec implementations.
	LookPath func(file string) (string, error)
	Run      RunFunc
}

// NewOffice returns a converter using the default candidates.
func NewOffice() *Office {
	return &Office{
		Candidates: append([]string(nil), DefaultCandidates...),
		Timeout:    2 * time.Minute,
		Logger:     log.New(io.Discard),
		LookPath:   exec.LookPath,
		Run:        runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// Extension returns the file extension produced for a convert-to filter
// such as "docx" or "docx:MS Word 2007 XML".
func Extension(format string) string {
	ext, _, _ := strings.Cut(format, ":")
	return strings.ToLower(strings.TrimSpace(ext))
}

// Convert transcodes pdf into format. Candidates that are missing or fail are
// skipped; the error of the last one is wrapped in ErrConversionFailed.
func (o *Office) Convert(ctx context.Context, pdf []byte, format string) ([]byte, error) {
	ext := Extension(format)
	if ext == "" || ext == FormatPDF {
		return pdf, nil
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	lookPath := o.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	run := o.Run
	if run == nil {
		run = runCommand
	}
	candidates := o.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	dir, err := os.MkdirTemp("", "blockpdf-convert-")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "document.pdf")
	if err := os.WriteFile(in, pdf, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write input: %w", err)
	}
	want := filepath.Join(dir, "document."+ext)

	lastErr := ErrNoConverter
	for _, name := range candidates {
		path, err := lookPath(name)
		if err != nil {
			logger.Debug("converter not available", "candidate", name, "err", err)
			lastErr = fmt.Errorf("%s: %w", name, ErrNoConverter)
			continue
		}

		runCtx, cancel := ctx, context.CancelFunc(func() {})
		if o.Timeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, o.Timeout)
		}
		out, err := run(runCtx, path, "--headless", "--convert-to", format, "--outdir", dir, in)
		cancel()
		if err != nil {
			logger.Debug("converter failed", "candidate", name, "err", err, "output", strings.TrimSpace(string(out)))
			lastErr = fmt.Errorf("%s: %w", name, err)
			continue
		}

		data, err := os.ReadFile(want)
		if err != nil {
			logger.Debug("converter produced no output", "candidate", name, "err", err)
			lastErr = fmt.Errorf("%s: no %s output: %w", name, ext, err)
			continue
		}
		logger.Debug("converted document", "candidate", name, "format", ext, "bytes", len(data))
		return data, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrConversionFailed, lastErr)
}
