package layout

import (
	"strings"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

const (
	quotePadding = 10.0
	// QuoteSpacing follows every quote.
	QuoteSpacing = 0.3 * style.Centimeter
)

type quoteRenderer struct{ *env }

// Render draws the quote and its caption inside one filled box. The box is
// never split across pages.
func (r quoteRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	q, ok := b.(document.Quote)
	if !ok {
		return mismatch(document.KindQuote, b)
	}
	align := style.ParseAlign(q.Alignment)
	st := style.QuoteText(align)
	cs := style.QuoteCaption(align)
	g := cur.Geometry()
	inner := g.UsableWidth() - 2*quotePadding

	var body text.Layout
	if runs := r.runs(q.Text, st); len(runs) > 0 {
		runs = append([]text.Run{{Text: "“", Font: st.Font, Color: st.Color}}, runs...)
		runs = append(runs, text.Run{Text: "”", Font: st.Font, Color: st.Color})
		body = r.measurer.Measure(runs, inner, st.Leading)
	}
	var caption text.Layout
	if c := strings.TrimSpace(q.Caption); c != "" {
		caption = r.flow("- "+c, cs, inner)
	}
	if body.Empty() && caption.Empty() {
		return empty(document.KindQuote)
	}

	h := body.Height + caption.Height + 2*quotePadding
	cur.EnsureSpace(h)
	top := cur.Y
	sink.Draw(pagination.RectOp{
		X:    g.Left(),
		Y:    top - h,
		W:    g.UsableWidth(),
		H:    h,
		Fill: style.QuoteFill.Ptr(),
	})
	x := g.Left() + quotePadding
	drawLines(sink, body, x, baselineBelow(top-quotePadding, st), inner, align)
	drawLines(sink, caption, x, baselineBelow(top-quotePadding-body.Height, cs), inner, align)
	cur.Advance(h, QuoteSpacing)
	return nil
}
