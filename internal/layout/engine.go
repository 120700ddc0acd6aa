package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/parser/html"
	"github.com/gompdf/blockpdf/internal/res"
	"github.com/gompdf/blockpdf/internal/text"
)

// Config holds the collaborators of an Engine. Zero fields get defaults.
type Config struct {
	Geometry pagination.Geometry
	Measurer *text.Measurer
	Markup   *html.Parser
	Assets   Assets
	Logger   *log.Logger

	// MaxImageWidth and MaxImageHeight bound placed images in points.
	MaxImageWidth  float64
	MaxImageHeight float64
}

func (c Config) withDefaults() Config {
	if c.Geometry == (pagination.Geometry{}) {
		c.Geometry = pagination.DefaultGeometry()
	}
	if c.Measurer == nil {
		c.Measurer = text.Default()
	}
	if c.Markup == nil {
		c.Markup = html.NewParser()
	}
	if c.Assets == nil {
		c.Assets = res.NewLibrary(res.NewLoader(""), res.DefaultDPI)
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.MaxImageWidth <= 0 {
		c.MaxImageWidth = DefaultMaxImageSize
	}
	if c.MaxImageHeight <= 0 {
		c.MaxImageHeight = DefaultMaxImageSize
	}
	return c
}

// Engine lays out documents page by page.
type Engine struct {
	cfg       Config
	renderers map[document.Kind]Renderer
}

// NewEngine creates an engine with a renderer for every block kind.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &env{
		measurer:       cfg.Measurer,
		markup:         cfg.Markup,
		assets:         cfg.Assets,
		logger:         cfg.Logger,
		maxImageWidth:  cfg.MaxImageWidth,
		maxImageHeight: cfg.MaxImageHeight,
	}
	return &Engine{
		cfg: cfg,
		renderers: map[document.Kind]Renderer{
			document.KindHeader:    headerRenderer{e},
			document.KindParagraph: paragraphRenderer{e},
			document.KindList:      listRenderer{e},
			document.KindChecklist: checklistRenderer{e},
			document.KindQuote:     quoteRenderer{e},
			document.KindWarning:   warningRenderer{e},
			document.KindCode:      codeRenderer{e},
			document.KindDelimiter: delimiterRenderer{e},
			document.KindTable:     tableRenderer{e},
			document.KindImage:     imageRenderer{e},
		},
	}
}

// Register adds or replaces the renderer for kind.
func (e *Engine) Register(kind document.Kind, r Renderer) {
	e.renderers[kind] = r
}

// Renderer returns the renderer registered for kind.
func (e *Engine) Renderer(kind document.Kind) (Renderer, bool) {
	r, ok := e.renderers[kind]
	return r, ok
}

// Geometry returns the page frame the engine lays out on.
func (e *Engine) Geometry() pagination.Geometry { return e.cfg.Geometry }

// Render lays out blocks in order. A block that cannot be rendered is logged
// and skipped; the only error is an invalid page geometry. An empty document
// yields one blank page.
func (e *Engine) Render(blocks []document.Block) ([]*pagination.Page, error) {
	g := e.cfg.Geometry
	if err := g.Validate(); err != nil {
		return nil, err
	}
	sink := pagination.NewSink(g)
	cur := pagination.NewCursor(g, sink)

	for i, b := range blocks {
		e.renderBlock(i, b, cur, sink)
	}

	pages := sink.Pages()
	e.cfg.Logger.Debug("layout complete", "blocks", len(blocks), "pages", len(pages))
	return pages, nil
}

func (e *Engine) renderBlock(i int, b document.Block, cur *pagination.Cursor, sink *pagination.Sink) {
	logger := e.cfg.Logger
	switch v := b.(type) {
	case nil:
		return
	case document.Unknown:
		logger.Debug("skipping unknown block", "index", i, "type", v.Type)
		return
	case document.Invalid:
		logger.Warn("skipping invalid block", "index", i, "kind", v.Type, "err", v.Err)
		return
	}

	r, ok := e.renderers[b.Kind()]
	if !ok {
		logger.Debug("no renderer for block", "index", i, "kind", b.Kind())
		return
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error("renderer panicked", "index", i, "kind", b.Kind(), "err", fmt.Sprint(p))
		}
	}()
	if err := r.Render(b, cur, sink); err != nil {
		if errors.Is(err, ErrEmptyBlock) {
			logger.Debug("skipping empty block", "index", i, "kind", b.Kind())
			return
		}
		logger.Warn("failed to render block", "index", i, "kind", b.Kind(), "err", err)
	}
}
