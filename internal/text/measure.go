// Package text measures and wraps styled text against core PDF font metrics.
//
// Every function here is a pure function of its inputs: the same runs and the
// same width always produce the same Layout. The metrics come from a private
// fpdf instance that is never used for output.
package text

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/mitchellh/go-wordwrap"
)

// Run is a piece of text drawn with a single font, color and link.
type Run struct {
	Text  string
	Font  style.Font
	Color style.Color
	Link  string
}

// Break is the run text that forces a line break.
const Break = "\n"

// Piece is the measured part of a run that falls inside one word.
type Piece struct {
	Text  string
	Font  style.Font
	Color style.Color
	Link  string
	Width float64
}

// Word is an unbreakable sequence of pieces.
type Word struct {
	Pieces []Piece
	Width  float64
	// Space is the natural gap before the word; zero for the first word of a line.
	Space float64
}

// Line is one wrapped line.
type Line struct {
	Words []Word
	Width float64
	// Hard is set when the line ends at an explicit break or at the end of the text.
	Hard bool
}

// Gaps returns the number of inter-word gaps on the line.
func (l Line) Gaps() int {
	if len(l.Words) < 2 {
		return 0
	}
	return len(l.Words) - 1
}

// Layout is the result of measuring a text body.
type Layout struct {
	Lines   []Line
	Width   float64
	Height  float64
	Leading float64
}

// Size returns the measured width and height.
func (l Layout) Size() (float64, float64) { return l.Width, l.Height }

// Empty reports whether the layout has no visible words.
func (l Layout) Empty() bool {
	for _, ln := range l.Lines {
		if len(ln.Words) > 0 {
			return false
		}
	}
	return true
}

const maxCachedWidths = 8192

// Measurer computes string widths with fpdf core font metrics. It is safe for
// concurrent use.
type Measurer struct {
	mu     sync.Mutex
	pdf    *fpdf.Fpdf
	widths map[string]float64
}

var (
	defaultOnce     sync.Once
	defaultMeasurer *Measurer
)

// Default returns the process-wide measurer.
func Default() *Measurer {
	defaultOnce.Do(func() { defaultMeasurer = NewMeasurer() })
	return defaultMeasurer
}

// NewMeasurer creates a measurer backed by its own fpdf instance.
func NewMeasurer() *Measurer {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont(style.FamilyHelvetica, "", 12)
	return &Measurer{pdf: pdf, widths: make(map[string]float64)}
}

// StringWidth returns the advance width of s in points.
func (m *Measurer) StringWidth(s string, f style.Font) float64 {
	if s == "" || f.Size <= 0 {
		return 0
	}
	key := f.Key() + "\x00" + s

	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.widths[key]; ok {
		return w
	}
	m.pdf.SetFont(f.Family, strings.ReplaceAll(f.StyleString(), "U", ""), f.Size)
	w := m.pdf.GetStringWidth(Encode(s))
	if len(m.widths) >= maxCachedWidths {
		m.widths = make(map[string]float64)
	}
	m.widths[key] = w
	return w
}

// Plain returns a single sanitized run in the paragraph's font and color.
func Plain(s string, p style.Paragraph) []Run {
	return []Run{{Text: Sanitize(s), Font: p.Font, Color: p.Color}}
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokSpace
	tokBreak
)

type token struct {
	kind  tokenKind
	word  Word
	space float64
}

// Measure wraps runs greedily into lines no wider than maxWidth. Whitespace
// separates words; runs that touch without whitespace form one word. A word
// wider than maxWidth starts a new line and is split between characters, so
// narrowing maxWidth never reduces the line count.
func (m *Measurer) Measure(runs []Run, maxWidth, leading float64) Layout {
	tokens := m.tokenize(runs)

	var (
		lines   []Line
		cur     Line
		pending float64
	)
	flush := func(hard bool) {
		cur.Hard = hard
		lines = append(lines, cur)
		cur = Line{}
		pending = 0
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokSpace:
			if len(cur.Words) > 0 {
				pending = tok.space
			}
		case tokBreak:
			flush(true)
		case tokWord:
			if maxWidth > 0 && tok.word.Width > maxWidth && len(cur.Words) > 0 {
				flush(false)
			}
			for _, w := range m.splitWord(tok.word, maxWidth) {
				if len(cur.Words) > 0 && maxWidth > 0 && cur.Width+pending+w.Width > maxWidth {
					flush(false)
				}
				if len(cur.Words) > 0 {
					w.Space = pending
					cur.Width += pending
				}
				cur.Words = append(cur.Words, w)
				cur.Width += w.Width
				pending = 0
			}
		}
	}
	if len(cur.Words) > 0 {
		flush(true)
	}

	out := Layout{Lines: lines, Leading: leading, Height: float64(len(lines)) * leading}
	for _, ln := range lines {
		if ln.Width > out.Width {
			out.Width = ln.Width
		}
	}
	return out
}

// tokenize splits runs into words, collapsible spaces and hard breaks.
func (m *Measurer) tokenize(runs []Run) []token {
	var (
		tokens []token
		word   Word
		buf    strings.Builder
	)
	var cur Run
	flushPiece := func() {
		if buf.Len() == 0 {
			return
		}
		p := Piece{Text: buf.String(), Font: cur.Font, Color: cur.Color, Link: cur.Link}
		p.Width = m.StringWidth(p.Text, p.Font)
		word.Pieces = append(word.Pieces, p)
		word.Width += p.Width
		buf.Reset()
	}
	flushWord := func() {
		flushPiece()
		if len(word.Pieces) > 0 {
			tokens = append(tokens, token{kind: tokWord, word: word})
		}
		word = Word{}
	}

	for _, r := range runs {
		flushPiece()
		cur = r
		for _, ch := range r.Text {
			switch {
			case ch == '\n':
				flushWord()
				tokens = append(tokens, token{kind: tokBreak})
			case unicode.IsSpace(ch):
				flushWord()
				if n := len(tokens); n > 0 && tokens[n-1].kind == tokSpace {
					continue
				}
				tokens = append(tokens, token{kind: tokSpace, space: m.StringWidth(" ", r.Font)})
			default:
				buf.WriteRune(ch)
			}
		}
	}
	flushWord()
	return tokens
}

// splitWord breaks a word that cannot fit on any line into chunks.
func (m *Measurer) splitWord(w Word, maxWidth float64) []Word {
	if maxWidth <= 0 || w.Width <= maxWidth {
		return []Word{w}
	}
	var (
		out   []Word
		chunk Word
	)
	for _, p := range w.Pieces {
		var buf strings.Builder
		var bufW float64
		emit := func() {
			if buf.Len() == 0 {
				return
			}
			chunk.Pieces = append(chunk.Pieces, Piece{Text: buf.String(), Font: p.Font, Color: p.Color, Link: p.Link, Width: bufW})
			chunk.Width += bufW
			buf.Reset()
			bufW = 0
		}
		for _, ch := range p.Text {
			cw := m.StringWidth(string(ch), p.Font)
			if chunk.Width+bufW+cw > maxWidth && (chunk.Width > 0 || bufW > 0) {
				emit()
				out = append(out, chunk)
				chunk = Word{}
			}
			buf.WriteRune(ch)
			bufW += cw
		}
		emit()
	}
	if len(chunk.Pieces) > 0 {
		out = append(out, chunk)
	}
	return out
}

// MeasurePreformatted lays out src verbatim, one source line per output line.
// Lines wider than maxWidth wrap at whitespace first and then at the column
// limit of the monospaced font.
func (m *Measurer) MeasurePreformatted(src string, p style.Paragraph, maxWidth float64) Layout {
	src = strings.TrimRight(src, "\n")
	out := Layout{Leading: p.Leading}
	if src == "" {
		return out
	}

	cols := 0
	if cw := m.StringWidth("M", p.Font); cw > 0 && maxWidth > 0 {
		cols = int(maxWidth / cw)
		if cols < 1 {
			cols = 1
		}
	}

	for _, raw := range strings.Split(src, "\n") {
		for _, seg := range m.wrapColumns(raw, p.Font, maxWidth, cols) {
			w := m.StringWidth(seg, p.Font)
			ln := Line{Width: w, Hard: true}
			if seg != "" {
				ln.Words = []Word{{Pieces: []Piece{{Text: seg, Font: p.Font, Color: p.Color, Width: w}}, Width: w}}
			}
			out.Lines = append(out.Lines, ln)
			if w > out.Width {
				out.Width = w
			}
		}
	}
	out.Height = float64(len(out.Lines)) * p.Leading
	return out
}

func (m *Measurer) wrapColumns(line string, f style.Font, maxWidth float64, cols int) []string {
	if cols == 0 || m.StringWidth(line, f) <= maxWidth {
		return []string{line}
	}
	var out []string
	for _, seg := range strings.Split(wordwrap.WrapString(line, uint(cols)), "\n") {
		for utf8.RuneCountInString(seg) > cols {
			rs := []rune(seg)
			out = append(out, string(rs[:cols]))
			seg = string(rs[cols:])
		}
		out = append(out, seg)
	}
	return out
}

// FitImage scales an intrinsic size into a bounding box, preserving aspect
// ratio and never enlarging.
func FitImage(w, h, maxW, maxH float64) (fw, fh, scale float64) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0
	}
	scale = 1
	if maxW > 0 && maxW/w < scale {
		scale = maxW / w
	}
	if maxH > 0 && maxH/h < scale {
		scale = maxH / h
	}
	return w * scale, h * scale, scale
}
