// Package html interprets the inline HTML found in block text (b, i, u,
// code, mark, a, br) and turns it into styled text runs.
package html

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

// Parser represents an inline HTML parser
type Parser struct {
	// MonoFamily is the font family used for <code> spans.
	MonoFamily string
	// LinkColor is applied to <a> spans.
	LinkColor style.Color
}

// NewParser creates a new inline HTML parser
func NewParser() *Parser {
	return &Parser{MonoFamily: style.FamilyCourier, LinkColor: style.LinkColor}
}

// ParseString parses inline HTML from a string
func (p *Parser) ParseString(content string, base style.Paragraph) ([]text.Run, error) {
	return p.Parse(strings.NewReader(content), base)
}

// Parse parses inline HTML from an io.Reader. Text is sanitized to the
// core font character set; runs inherit from base.
func (p *Parser) Parse(r io.Reader, base style.Paragraph) ([]text.Run, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inline markup: %w", err)
	}

	c := &collector{parser: p}
	st := span{font: base.Font, color: base.Color}
	for _, n := range nodes {
		c.walk(n, st)
	}
	return c.finish(), nil
}

// span is the inherited inline state.
type span struct {
	font  style.Font
	color style.Color
	link  string
}

type collector struct {
	parser *Parser
	runs   []text.Run
}

func (c *collector) walk(n *html.Node, st span) {
	switch n.Type {
	case html.TextNode:
		c.text(n.Data, st)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head:
		return
	case atom.Br:
		c.brk(st)
		return
	case atom.B, atom.Strong:
		st.font = st.font.WithBold()
	case atom.I, atom.Em, atom.Cite, atom.Var:
		st.font = st.font.WithItalic()
	case atom.U, atom.Ins, atom.Mark:
		st.font = st.font.WithUnderline()
	case atom.Code, atom.Kbd, atom.Samp, atom.Tt:
		st.font = st.font.WithFamily(c.parser.MonoFamily)
	case atom.A:
		if href := attr(n, "href"); href != "" {
			st.link = href
		}
		st.color = c.parser.LinkColor
		st.font = st.font.WithUnderline()
	case atom.P, atom.Div, atom.Li:
		if len(c.runs) > 0 && c.runs[len(c.runs)-1].Text != text.Break {
			c.brk(st)
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.walk(ch, st)
	}
}

func (c *collector) text(s string, st span) {
	s = normalizeWhitespace(text.Sanitize(s))
	if s == "" {
		return
	}
	if n := len(c.runs); n > 0 {
		prev := &c.runs[n-1]
		if prev.Font == st.font && prev.Color == st.color && prev.Link == st.link && prev.Text != text.Break {
			prev.Text = normalizeWhitespace(prev.Text + s)
			return
		}
	}
	c.runs = append(c.runs, text.Run{Text: s, Font: st.font, Color: st.color, Link: st.link})
}

func (c *collector) brk(st span) {
	c.runs = append(c.runs, text.Run{Text: text.Break, Font: st.font, Color: st.color})
}

// finish trims whitespace at the edges of the text and drops trailing breaks.
func (c *collector) finish() []text.Run {
	runs := c.runs
	for len(runs) > 0 {
		runs[0].Text = strings.TrimLeftFunc(runs[0].Text, unicode.IsSpace)
		if runs[0].Text != "" {
			break
		}
		runs = runs[1:]
	}
	for len(runs) > 0 {
		last := len(runs) - 1
		runs[last].Text = strings.TrimRightFunc(runs[last].Text, unicode.IsSpace)
		if runs[last].Text != "" {
			break
		}
		runs = runs[:last]
	}
	if len(runs) == 0 {
		return nil
	}

	out := runs[:0]
	for _, r := range runs {
		if r.Text != "" {
			out = append(out, r)
		}
	}
	return out
}

// normalizeWhitespace collapses whitespace runs into single spaces
func normalizeWhitespace(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
