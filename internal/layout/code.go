package layout

import (
	"strings"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

const (
	codePadding = 6.0
	codeRadius  = 4.0
	// CodeSpacing follows every code block.
	CodeSpacing = 0.2 * style.Centimeter
)

type codeRenderer struct{ *env }

// Render draws source text verbatim on a dark box. No markup is interpreted.
func (r codeRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	c, ok := b.(document.Code)
	if !ok {
		return mismatch(document.KindCode, b)
	}
	src := text.SanitizePreformatted(c.Code)
	if strings.TrimSpace(src) == "" {
		return empty(document.KindCode)
	}
	st := style.CodeText()
	g := cur.Geometry()
	inner := g.UsableWidth() - 2*codePadding

	body := r.measurer.MeasurePreformatted(src, st, inner)
	h := body.Height + 2*codePadding
	cur.EnsureSpace(h)
	top := cur.Y
	sink.Draw(pagination.RectOp{
		X:         g.Left(),
		Y:         top - h,
		W:         g.UsableWidth(),
		H:         h,
		Fill:      style.CodeFill.Ptr(),
		Stroke:    style.CodeStroke.Ptr(),
		LineWidth: 0.5,
		Radius:    codeRadius,
	})
	drawLines(sink, body, g.Left()+codePadding, baselineBelow(top-codePadding, st), inner, style.AlignLeft)
	cur.Advance(h, CodeSpacing)
	return nil
}
