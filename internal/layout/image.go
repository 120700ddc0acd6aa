package layout

import (
	"fmt"
	"strings"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

const (
	// DefaultMaxImageSize bounds images to six inches on each side.
	DefaultMaxImageSize = 6 * 72.0

	imageSpaceAbove = 10.0
	captionGap      = 8.0
	minImageHeight  = 1.0
	// ImageSpacing follows every image.
	ImageSpacing = 20.0
)

type imageRenderer struct{ *env }

// Render draws the picture centered at its physical size, shrunk to fit the
// configured bounds, with an optional caption below.
func (r imageRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	im, ok := b.(document.Image)
	if !ok {
		return mismatch(document.KindImage, b)
	}
	src := strings.TrimSpace(im.Source)
	if src == "" {
		return empty(document.KindImage)
	}
	pic, err := r.assets.Image(src)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}
	cs := style.ImageCaption()
	g := cur.Geometry()

	var caption text.Layout
	if c := strings.TrimSpace(im.Caption); c != "" {
		caption = r.flow(c, cs, g.UsableWidth())
	}
	below := 0.0
	if !caption.Empty() {
		below = captionGap + caption.Height
	}

	// The picture shrinks so that it and its caption fit one content region.
	iw, ih := pic.PhysicalSize()
	maxW := min(g.UsableWidth(), r.maxImageWidth)
	maxH := min(g.UsableHeight()-imageSpaceAbove-below, r.maxImageHeight)
	if maxH < minImageHeight {
		maxH = minImageHeight
	}
	w, h, _ := text.FitImage(iw, ih, maxW, maxH)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("image: %w: zero size", ErrEmptyBlock)
	}
	required := imageSpaceAbove + h + below

	cur.EnsureSpace(required)
	top := cur.Y - imageSpaceAbove
	sink.Draw(pagination.ImageOp{
		X:    g.Left() + (g.UsableWidth()-w)/2,
		Y:    top - h,
		W:    w,
		H:    h,
		Name: pic.Name,
		Data: pic.PNG,
	})
	if !caption.Empty() {
		drawLines(sink, caption, g.Left(), baselineBelow(top-h-captionGap, cs), g.UsableWidth(), cs.Align)
	}
	cur.Advance(required, ImageSpacing)
	return nil
}
