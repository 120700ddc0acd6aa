// Package style holds the immutable font, color and paragraph values used by
// the block renderers. Values are built fresh for every render call and are
// never shared or mutated afterwards.
package style

import (
	"strconv"
	"strings"
)

// Core PDF font families. Only these are available without embedding.
const (
	FamilyHelvetica = "Helvetica"
	FamilyTimes     = "Times"
	FamilyCourier   = "Courier"
)

// Font describes a core font face at a given size.
type Font struct {
	Family    string
	Bold      bool
	Italic    bool
	Underline bool
	Size      float64
}

// Helvetica returns a regular Helvetica face.
func Helvetica(size float64) Font { return Font{Family: FamilyHelvetica, Size: size} }

// Times returns a regular Times face.
func Times(size float64) Font { return Font{Family: FamilyTimes, Size: size} }

// Courier returns a regular Courier face.
func Courier(size float64) Font { return Font{Family: FamilyCourier, Size: size} }

// WithBold returns a copy of f with bold set.
func (f Font) WithBold() Font { f.Bold = true; return f }

// WithItalic returns a copy of f with italic set.
func (f Font) WithItalic() Font { f.Italic = true; return f }

// WithUnderline returns a copy of f with underline set.
func (f Font) WithUnderline() Font { f.Underline = true; return f }

// WithFamily returns a copy of f using family.
func (f Font) WithFamily(family string) Font { f.Family = family; return f }

// StyleString returns the fpdf style string ("", "B", "BI", "IU", ...).
func (f Font) StyleString() string {
	var b strings.Builder
	if f.Bold {
		b.WriteByte('B')
	}
	if f.Italic {
		b.WriteByte('I')
	}
	if f.Underline {
		b.WriteByte('U')
	}
	return b.String()
}

// Key identifies the metric set of a font; underline does not change widths.
func (f Font) Key() string {
	st := f.StyleString()
	st = strings.ReplaceAll(st, "U", "")
	return f.Family + ":" + st + ":" + strconv.FormatFloat(f.Size, 'f', -1, 64)
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Gray  = Color{R: 128, G: 128, B: 128}
	Blue  = Color{B: 255}
)

// Hex parses "#RRGGBB" or "#RGB". Invalid input yields black.
func Hex(s string) Color {
	c, _ := ParseHex(s)
	return c
}

// ParseHex parses a hex color, reporting whether the input was valid.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Ptr returns a pointer to a copy of c, for optional fill/stroke fields.
func (c Color) Ptr() *Color { return &c }

// Align is the horizontal alignment of lines inside a text box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ParseAlign maps "left", "center" and "right"; anything else is left.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	case "justify":
		return AlignJustify
	}
	return AlignLeft
}

// Paragraph is the base style of a wrapped text body.
type Paragraph struct {
	Font    Font
	Color   Color
	Leading float64
	Align   Align
}
