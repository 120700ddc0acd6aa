package layout

import (
	"strconv"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

const (
	listIndent      = 18.0
	listItemSpacing = 2.0
	// ListSpacing follows every list.
	ListSpacing = 0.1 * style.Centimeter
)

// Bullet labels unordered list items.
const Bullet = "•"

// ListLabel returns the label of the item at index i.
func ListLabel(s document.ListStyle, i int) string {
	if s == document.ListOrdered {
		return strconv.Itoa(i+1) + "."
	}
	return Bullet
}

type listRenderer struct{ *env }

// Render places items one at a time, so a long list flows across pages
// instead of reserving its full height up front.
func (r listRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	l, ok := b.(document.List)
	if !ok {
		return mismatch(document.KindList, b)
	}
	if len(l.Items) == 0 {
		return empty(document.KindList)
	}
	st := style.ListItem()
	labelFont := style.ListLabel()
	g := cur.Geometry()

	labels := make([]string, len(l.Items))
	indent := listIndent
	for i := range l.Items {
		labels[i] = ListLabel(l.Style, i)
		indent = max(indent, r.measurer.StringWidth(labels[i], labelFont)+4)
	}
	width := g.UsableWidth() - indent

	layouts := make([]text.Layout, len(l.Items))
	for i, item := range l.Items {
		layouts[i] = r.flow(item, st, width)
	}

	for i, tl := range layouts {
		h := max(tl.Height, st.Leading)
		cur.EnsureSpace(h)
		base := baselineBelow(cur.Y, st)
		sink.Draw(pagination.TextOp{
			X:     g.Left(),
			Y:     base,
			Text:  labels[i],
			Font:  labelFont,
			Color: st.Color,
			Width: r.measurer.StringWidth(labels[i], labelFont),
		})
		drawLines(sink, tl, g.Left()+indent, base, width, st.Align)
		cur.Advance(h, listItemSpacing)
	}
	cur.Advance(0, ListSpacing)
	return nil
}
