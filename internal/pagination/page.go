package pagination

import "github.com/gompdf/blockpdf/internal/style"

// Op is a placed draw primitive. Positions are in PDF user space.
type Op interface {
	isOp()
}

// TextOp draws a string with its baseline starting at (X, Y).
type TextOp struct {
	X, Y  float64
	Text  string
	Font  style.Font
	Color style.Color
	// Link makes the text clickable when non-empty.
	Link string
	// Width is the measured advance, used for link areas.
	Width float64
}

// RectOp draws a rectangle with its bottom-left corner at (X, Y).
type RectOp struct {
	X, Y, W, H float64
	Fill       *style.Color
	Stroke     *style.Color
	LineWidth  float64
	Radius     float64
}

// ImageOp draws an opaque PNG with its bottom-left corner at (X, Y).
type ImageOp struct {
	X, Y, W, H float64
	// Name identifies the image payload; equal names share one embedded copy.
	Name string
	Data []byte
}

func (TextOp) isOp()  {}
func (RectOp) isOp()  {}
func (ImageOp) isOp() {}

// Page represents a single page in the document
type Page struct {
	Number int
	Width  float64
	Height float64
	Ops    []Op
}

// Texts returns the text ops of the page in draw order.
func (p *Page) Texts() []TextOp {
	var out []TextOp
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			out = append(out, t)
		}
	}
	return out
}

// Rects returns the rectangle ops of the page in draw order.
func (p *Page) Rects() []RectOp {
	var out []RectOp
	for _, op := range p.Ops {
		if r, ok := op.(RectOp); ok {
			out = append(out, r)
		}
	}
	return out
}

// Images returns the image ops of the page in draw order.
func (p *Page) Images() []ImageOp {
	var out []ImageOp
	for _, op := range p.Ops {
		if im, ok := op.(ImageOp); ok {
			out = append(out, im)
		}
	}
	return out
}
