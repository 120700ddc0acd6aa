package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/pkg/api"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "[Error]: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	output   string
	format   string
	config   string
	pageSize string
	margin   float64
	dpi      float64
	title    string
	verbose  bool
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "blockpdf <input.json>",
		Short:         "Convert a block document to PDF",
		Long:          `blockpdf lays out an Editor.js block document on fixed-size pages and writes the PDF to stdout.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			options, err := resolveOptions(cmd, f)
			if err != nil {
				return err
			}
			options.Logger = logger

			var buf bytes.Buffer
			if err := api.NewWithOptions(options).ConvertFile(cmd.Context(), args[0], &buf); err != nil {
				return err
			}

			if f.output == "" || f.output == "-" {
				_, err = stdout.Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(f.output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.output, err)
			}
			logger.Debug("wrote output", "path", f.output)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fl.StringVarP(&f.format, "format", "f", "pdf", "output format; anything but pdf is converted with LibreOffice")
	fl.StringVarP(&f.config, "config", "c", "", "TOML config file")
	fl.StringVar(&f.pageSize, "page-size", "A4", "page size: A3, A4, A5, Letter or Legal")
	fl.Float64Var(&f.margin, "margin", pagination.DefaultMargin, "page margin in points")
	fl.Float64Var(&f.dpi, "dpi", 96, "resolution assumed for images without metadata")
	fl.StringVar(&f.title, "title", "", "document title")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

// resolveOptions layers the config file and then explicitly set flags over
// the defaults.
func resolveOptions(cmd *cobra.Command, f flags) (api.Options, error) {
	options := api.DefaultOptions()
	if f.config != "" {
		var err error
		if options, err = api.LoadConfig(f.config, options); err != nil {
			return options, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("page-size") {
		size, ok := pagination.SizeByName(f.pageSize)
		if !ok {
			return options, fmt.Errorf("unknown page size %q", f.pageSize)
		}
		options.PageWidth, options.PageHeight = size.Width, size.Height
	}
	if fl.Changed("margin") {
		options.Margin = f.margin
	}
	if fl.Changed("dpi") {
		if f.dpi <= 0 {
			return options, fmt.Errorf("dpi must be positive, got %g", f.dpi)
		}
		options.DefaultDPI = f.dpi
	}
	if fl.Changed("format") {
		options.Format = f.format
	}
	if fl.Changed("title") {
		options.Title = f.title
	}
	return options, nil
}
