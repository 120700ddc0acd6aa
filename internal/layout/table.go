package layout

import (
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

const (
	cellPadding   = 6.0
	gridLineWidth = 0.5
	// TableSpacing follows every table.
	TableSpacing = 0.5 * style.Centimeter
)

type tableRenderer struct{ *env }

// Render draws an equal-width grid. The table is placed as one unit; rows are
// not split across pages.
func (r tableRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	t, ok := b.(document.Table)
	if !ok {
		return mismatch(document.KindTable, b)
	}
	cols := t.Columns()
	if cols == 0 {
		return empty(document.KindTable)
	}
	st := style.TableCell()
	g := cur.Geometry()
	colW := g.UsableWidth() / float64(cols)
	// Narrow columns give up horizontal padding so cell text still wraps
	// inside its own cell.
	padX := min(cellPadding, colW/4)
	inner := colW - 2*padX

	cells := make([][]text.Layout, len(t.Rows))
	heights := make([]float64, len(t.Rows))
	var total float64
	for i, row := range t.Rows {
		cells[i] = make([]text.Layout, len(row))
		rowH := st.Leading
		for j, cell := range row {
			cells[i][j] = r.flow(cell, st, inner)
			rowH = max(rowH, cells[i][j].Height)
		}
		heights[i] = rowH + 2*cellPadding
		total += heights[i]
	}

	cur.EnsureSpace(total)
	top := cur.Y
	for i := range t.Rows {
		var fill *style.Color
		if i == 0 && t.HasHeaderRow {
			fill = style.TableHeader.Ptr()
		}
		rowH := heights[i]
		for j := 0; j < cols; j++ {
			x := g.Left() + float64(j)*colW
			sink.Draw(pagination.RectOp{
				X:         x,
				Y:         top - rowH,
				W:         colW,
				H:         rowH,
				Fill:      fill,
				Stroke:    style.TableGrid.Ptr(),
				LineWidth: gridLineWidth,
			})
			if j >= len(cells[i]) {
				continue
			}
			l := cells[i][j]
			textTop := top - (rowH-l.Height)/2
			drawLines(sink, l, x+padX, baselineBelow(textTop, st), inner, st.Align)
		}
		top -= rowH
	}
	cur.Advance(total, TableSpacing)
	return nil
}
