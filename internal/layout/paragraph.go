package layout

import (
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
)

// ParagraphSpacing follows every paragraph.
const ParagraphSpacing = 0.3 * style.Centimeter

type paragraphRenderer struct{ *env }

func (r paragraphRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	p, ok := b.(document.Paragraph)
	if !ok {
		return mismatch(document.KindParagraph, b)
	}
	st := style.Body()
	g := cur.Geometry()

	l := r.flow(p.Text, st, g.UsableWidth())
	if l.Empty() {
		return empty(document.KindParagraph)
	}

	cur.EnsureSpace(l.Height)
	drawLines(sink, l, g.Left(), baselineBelow(cur.Y, st), g.UsableWidth(), st.Align)
	cur.Advance(l.Height, ParagraphSpacing)
	return nil
}
