// Package layout turns parsed blocks into positioned draw ops on pages.
//
// Each block kind has a Renderer. A renderer measures its block, asks the
// cursor for room, draws into the sink and advances the cursor. The Engine
// walks a document and dispatches blocks to renderers in order.
package layout

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/parser/html"
	"github.com/gompdf/blockpdf/internal/res"
	"github.com/gompdf/blockpdf/internal/text"
)

var (
	// ErrBlockMismatch is returned when a renderer receives a block of
	// another kind.
	ErrBlockMismatch = errors.New("block does not match renderer")
	// ErrEmptyBlock is returned for blocks with nothing to draw. The cursor
	// is left unchanged.
	ErrEmptyBlock = errors.New("block has no content")
)

// Renderer places one block. A renderer that returns an error must leave the
// cursor where it found it.
type Renderer interface {
	Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error

// Render calls f.
func (f RendererFunc) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	return f(b, cur, sink)
}

// Assets provides decoded images and rasterized icons.
type Assets interface {
	Image(source string) (*res.Picture, error)
	Icon(name string, px int) ([]byte, string, error)
}

// env holds the read-only collaborators shared by the built-in renderers.
type env struct {
	measurer *text.Measurer
	markup   *html.Parser
	assets   Assets
	logger   *log.Logger

	maxImageWidth  float64
	maxImageHeight float64
}

func mismatch(want document.Kind, b document.Block) error {
	if b == nil {
		return fmt.Errorf("%w: want %s, got nil", ErrBlockMismatch, want)
	}
	return fmt.Errorf("%w: want %s, got %s", ErrBlockMismatch, want, b.Kind())
}

func empty(k document.Kind) error {
	return fmt.Errorf("%s: %w", k, ErrEmptyBlock)
}
