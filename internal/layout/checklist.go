package layout

import (
	"math"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/res"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

const (
	checkboxSize = 12.0
	checkboxGap  = 5.0
	// iconOversample is the raster resolution of icons in pixels per point.
	iconOversample = 4
)

type checklistRenderer struct{ *env }

func (r checklistRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	c, ok := b.(document.Checklist)
	if !ok {
		return mismatch(document.KindChecklist, b)
	}
	if len(c.Items) == 0 {
		return empty(document.KindChecklist)
	}
	st := style.ChecklistItem()
	g := cur.Geometry()
	indent := checkboxSize + checkboxGap
	width := g.UsableWidth() - indent

	layouts := make([]text.Layout, len(c.Items))
	for i, item := range c.Items {
		layouts[i] = r.flow(item.Text, st, width)
	}

	for i, tl := range layouts {
		h := max(tl.Height, st.Leading, checkboxSize)
		cur.EnsureSpace(h)
		base := baselineBelow(cur.Y, st)
		r.checkbox(sink, g.Left(), base-checkboxSize*0.2, c.Items[i].Checked)
		drawLines(sink, tl, g.Left()+indent, base, width, st.Align)
		cur.Advance(h, st.Leading*0.5)
	}
	cur.Advance(0, ListSpacing)
	return nil
}

// checkbox draws the box icon with its bottom-left corner at (x, y), or a
// plain vector box when the icon is unavailable.
func (r checklistRenderer) checkbox(sink *pagination.Sink, x, y float64, checked bool) {
	name := res.IconUnchecked
	if checked {
		name = res.IconChecked
	}
	data, id, err := r.assets.Icon(name, int(math.Ceil(checkboxSize*iconOversample)))
	if err == nil {
		sink.Draw(pagination.ImageOp{X: x, Y: y, W: checkboxSize, H: checkboxSize, Name: id, Data: data})
		return
	}
	r.logger.Debug("checkbox icon unavailable, drawing box", "icon", name, "err", err)

	box := pagination.RectOp{X: x + 1, Y: y + 1, W: checkboxSize - 2, H: checkboxSize - 2, Stroke: style.Black.Ptr(), LineWidth: 1}
	if checked {
		box.Fill = style.Black.Ptr()
	}
	sink.Draw(box)
}
