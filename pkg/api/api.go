package api

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gompdf/blockpdf/internal/convert"
	"github.com/gompdf/blockpdf/internal/layout"
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/parser/html"
	"github.com/gompdf/blockpdf/internal/render/pdf"
	"github.com/gompdf/blockpdf/internal/res"
	"github.com/gompdf/blockpdf/internal/text"
)

// Converter is the main API for converting block documents to PDF. It is safe
// for concurrent use; every conversion runs its own layout pass.
type Converter struct {
	options  Options
	logger   *log.Logger
	measurer *text.Measurer
	markup   *html.Parser
}

// New creates a converter with default options modified by opts
func New(opts ...Option) *Converter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a converter with the specified options
func NewWithOptions(options Options) *Converter {
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Converter{
		options:  options,
		logger:   logger,
		measurer: text.Default(),
		markup:   html.NewParser(),
	}
}

// Options returns a copy of the converter's options
func (c *Converter) Options() Options { return c.options }

// WithOption returns a new converter with the specified option set
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Layout places doc on pages. Relative image sources resolve against baseURL
// and the configured resource paths.
func (c *Converter) Layout(doc *document.Document, baseURL string) ([]*pagination.Page, error) {
	loader := res.NewLoader(baseURL)
	for _, path := range c.options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	engine := layout.NewEngine(layout.Config{
		Geometry:       c.options.Geometry(),
		Measurer:       c.measurer,
		Markup:         c.markup,
		Assets:         res.NewLibrary(loader, c.options.DefaultDPI),
		Logger:         c.logger,
		MaxImageWidth:  c.options.MaxImageWidth,
		MaxImageHeight: c.options.MaxImageHeight,
	})
	pages, err := engine.Render(doc.Blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out document: %w", err)
	}
	return pages, nil
}

// Convert writes doc to output in the configured format. Nothing is written
// unless the conversion succeeds.
func (c *Converter) Convert(ctx context.Context, doc *document.Document, output io.Writer) error {
	return c.convert(ctx, doc, "", output)
}

func (c *Converter) convert(ctx context.Context, doc *document.Document, baseURL string, output io.Writer) error {
	pages, err := c.Layout(doc, baseURL)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	renderer := pdf.NewRenderer()
	renderer.Logger = c.logger
	err = renderer.Render(pages, &buf, pdf.RenderOptions{
		Title:         c.options.Title,
		Author:        c.options.Author,
		Subject:       c.options.Subject,
		Keywords:      c.options.Keywords,
		Creator:       c.options.Creator,
		CreationDate:  c.options.CreationDate,
		NoCompression: c.options.NoCompression,
	})
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	data := buf.Bytes()
	if ext := convert.Extension(c.options.Format); ext != "" && ext != convert.FormatPDF {
		office := convert.NewOffice()
		office.Logger = c.logger
		if len(c.options.OfficeCandidates) > 0 {
			office.Candidates = c.options.OfficeCandidates
		}
		data, err = office.Convert(ctx, data, c.options.Format)
		if err != nil {
			return err
		}
	}

	c.logger.Info("document converted", "blocks", len(doc.Blocks), "pages", len(pages), "bytes", len(data))
	if _, err := output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// ConvertReader parses a JSON document from r and converts it
func (c *Converter) ConvertReader(ctx context.Context, r io.Reader, output io.Writer) error {
	doc, err := document.Parse(r)
	if err != nil {
		return err
	}
	return c.convert(ctx, doc, "", output)
}

// ConvertFile converts the JSON document at inputPath. Relative image paths
// resolve against the document's directory.
func (c *Converter) ConvertFile(ctx context.Context, inputPath string, output io.Writer) error {
	doc, err := document.ParseFile(inputPath)
	if err != nil {
		return err
	}
	return c.convert(ctx, doc, inputPath, output)
}

// ConvertBytes converts JSON document bytes to output bytes
func (c *Converter) ConvertBytes(ctx context.Context, content []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.ConvertReader(ctx, bytes.NewReader(content), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
