package layout

import (
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
)

type headerRenderer struct{ *env }

// Render draws the header with its first baseline on the cursor. Headers take
// no spacing after; the following block supplies it.
func (r headerRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	h, ok := b.(document.Header)
	if !ok {
		return mismatch(document.KindHeader, b)
	}
	st := style.Header(h.Level)
	g := cur.Geometry()

	l := r.flow(h.Text, st, g.UsableWidth())
	if l.Empty() {
		return empty(document.KindHeader)
	}

	cur.EnsureSpace(l.Height)
	drawLines(sink, l, g.Left(), cur.Y, g.UsableWidth(), st.Align)
	cur.Advance(l.Height, 0)
	return nil
}
