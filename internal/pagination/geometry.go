package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGeometry is returned when a page has no content region.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
)

var pageSizes = []PageSize{PageSizeA4, PageSizeLetter, PageSizeLegal, PageSizeA3, PageSizeA5}

// SizeByName looks up a standard page size, ignoring case.
func SizeByName(name string) (PageSize, bool) {
	for _, s := range pageSizes {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return PageSize{}, false
}

// DefaultMargin is 2cm.
const DefaultMargin = 2 * 72 / 2.54

// Geometry is the fixed page frame of a document. Coordinates derived from
// it are PDF user space: the origin is the bottom-left corner of the page.
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// DefaultGeometry is A4 with 2cm margins.
func DefaultGeometry() Geometry {
	return Geometry{Width: PageSizeA4.Width, Height: PageSizeA4.Height, Margin: DefaultMargin}
}

// Validate checks that the margins leave a content region.
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: page size %.2fx%.2f", ErrInvalidGeometry, g.Width, g.Height)
	case g.Margin <= 0:
		return fmt.Errorf("%w: margin %.2f must be positive", ErrInvalidGeometry, g.Margin)
	case g.Margin >= g.Width/2 || g.Margin >= g.Height/2:
		return fmt.Errorf("%w: margin %.2f leaves no content region on %.2fx%.2f", ErrInvalidGeometry, g.Margin, g.Width, g.Height)
	}
	return nil
}

// Top is the cursor position at the start of a page.
func (g Geometry) Top() float64 { return g.Height - g.Margin }

// Bottom is the lowest cursor position regular content may reach.
func (g Geometry) Bottom() float64 { return g.Margin }

// Left is the x position of the content region.
func (g Geometry) Left() float64 { return g.Margin }

func (g Geometry) UsableWidth() float64  { return g.Width - 2*g.Margin }
func (g Geometry) UsableHeight() float64 { return g.Height - 2*g.Margin }
