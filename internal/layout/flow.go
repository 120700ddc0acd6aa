package layout

import (
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

// ascent approximates the core fonts' ascender as a fraction of the size.
const ascent = 0.8

// baselineBelow returns the first baseline of a text body in p whose line box
// starts at top. The glyphs are centered in the leading.
func baselineBelow(top float64, p style.Paragraph) float64 {
	return top - (p.Leading-p.Font.Size)/2 - p.Font.Size*ascent
}

// drawLines emits the text ops of l with the first baseline at baseline. Lines
// are aligned inside [x, x+width]. Justified lines stretch their inter-word
// gaps, except hard lines which stay ragged.
func drawLines(sink *pagination.Sink, l text.Layout, x, baseline, width float64, align style.Align) {
	for i, line := range l.Lines {
		y := baseline - float64(i)*l.Leading
		if len(line.Words) == 0 {
			continue
		}

		start, extra := x, 0.0
		switch align {
		case style.AlignCenter:
			start = x + (width-line.Width)/2
		case style.AlignRight:
			start = x + width - line.Width
		case style.AlignJustify:
			if !line.Hard && line.Gaps() > 0 && line.Width < width {
				extra = (width - line.Width) / float64(line.Gaps())
			}
		}

		pos := start
		for j, w := range line.Words {
			if j > 0 {
				pos += w.Space + extra
			}
			for _, p := range w.Pieces {
				sink.Draw(pagination.TextOp{
					X:     pos,
					Y:     y,
					Text:  p.Text,
					Font:  p.Font,
					Color: p.Color,
					Link:  p.Link,
					Width: p.Width,
				})
				pos += p.Width
			}
		}
	}
}

// runs parses inline HTML over base. Content that fails to parse falls back
// to plain text.
func (e *env) runs(src string, base style.Paragraph) []text.Run {
	runs, err := e.markup.ParseString(src, base)
	if err != nil {
		e.logger.Debug("inline markup rejected, using plain text", "err", err)
		return text.Plain(src, base)
	}
	return runs
}

// flow parses and measures inline HTML in one step.
func (e *env) flow(src string, base style.Paragraph, width float64) text.Layout {
	return e.measurer.Measure(e.runs(src, base), width, base.Leading)
}
