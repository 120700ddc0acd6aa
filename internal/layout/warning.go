package layout

import (
	"html"
	"math"
	"strings"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/parser/document"
	"github.com/gompdf/blockpdf/internal/res"
	"github.com/gompdf/blockpdf/internal/style"
)

const (
	warningPadding = 6.0
	warningIcon    = 16.0
	warningRadius  = 6.0
	// WarningSpacing follows every warning.
	WarningSpacing = 0.2 * style.Centimeter
)

type warningRenderer struct{ *env }

// Render draws an icon beside a bold title and the message, in a rounded
// box. The icon is centered vertically against the text.
func (r warningRenderer) Render(b document.Block, cur *pagination.Cursor, sink *pagination.Sink) error {
	w, ok := b.(document.Warning)
	if !ok {
		return mismatch(document.KindWarning, b)
	}
	title := strings.TrimSpace(w.Title)
	message := strings.TrimSpace(w.Message)
	if title == "" && message == "" {
		return empty(document.KindWarning)
	}
	st := style.WarningText()
	g := cur.Geometry()
	width := g.UsableWidth() - warningIcon - 3*warningPadding

	src := message
	if title != "" {
		src = "<b>" + html.EscapeString(title) + ":</b> " + message
	}
	body := r.flow(src, st, width)

	content := max(body.Height, warningIcon)
	h := content + 2*warningPadding
	cur.EnsureSpace(h)
	top := cur.Y
	sink.Draw(pagination.RectOp{
		X:         g.Left(),
		Y:         top - h,
		W:         g.UsableWidth(),
		H:         h,
		Fill:      style.WarningFill.Ptr(),
		Stroke:    style.WarningStroke.Ptr(),
		LineWidth: 1,
		Radius:    warningRadius,
	})

	iconX := g.Left() + warningPadding
	iconY := top - warningPadding - content/2 - warningIcon/2
	if data, id, err := r.assets.Icon(res.IconWarning, int(math.Ceil(warningIcon*iconOversample))); err == nil {
		sink.Draw(pagination.ImageOp{X: iconX, Y: iconY, W: warningIcon, H: warningIcon, Name: id, Data: data})
	} else {
		r.logger.Debug("warning icon unavailable, drawing mark", "err", err)
		mark := style.Helvetica(warningIcon).WithBold()
		sink.Draw(pagination.TextOp{
			X:     iconX + (warningIcon-r.measurer.StringWidth("!", mark))/2,
			Y:     iconY + warningIcon*0.15,
			Text:  "!",
			Font:  mark,
			Color: style.WarningStroke,
		})
	}

	textTop := top - warningPadding - (content-body.Height)/2
	drawLines(sink, body, iconX+warningIcon+warningPadding, baselineBelow(textTop, st), width, st.Align)
	cur.Advance(h, WarningSpacing)
	return nil
}
