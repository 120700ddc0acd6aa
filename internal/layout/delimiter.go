package layout

import (
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
)

const (
	// DelimiterMark is the text of a section break.
	DelimiterMark = "***"
	// DelimiterSpacing follows every delimiter.
	DelimiterSpacing = 0.2 * style.Centimeter
)

type delimiterRenderer struct{ *env }

// Render centers the mark on the full page width.
func (r delimiterRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	if _, ok := b.(document.Delimiter); !ok {
		return mismatch(document.KindDelimiter, b)
	}
	f := style.Delimiter()
	g := cur.Geometry()
	w := r.measurer.StringWidth(DelimiterMark, f)
	h := f.Size * 1.2

	cur.EnsureSpace(h)
	sink.Draw(pagination.TextOp{
		X:     (g.Width - w) / 2,
		Y:     cur.Y - f.Size,
		Text:  DelimiterMark,
		Font:  f,
		Color: style.DelimiterColor,
		Width: w,
	})
	cur.Advance(h, DelimiterSpacing)
	return nil
}
