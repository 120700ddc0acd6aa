package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderSize(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 32},
		{2, 28},
		{3, 26},
		{4, 24},
		{5, 22},
		{6, 20},
		{0, 32},
		{9, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeaderSize(tt.level), "level %d", tt.level)
	}
}

func TestFontCopies(t *testing.T) {
	base := Helvetica(12)
	bold := base.WithBold()

	assert.False(t, base.Bold, "WithBold must not mutate the receiver")
	assert.True(t, bold.Bold)
	assert.Equal(t, "BIU", bold.WithItalic().WithUnderline().StyleString())
	assert.Equal(t, base.Key(), base.WithUnderline().Key())
	assert.NotEqual(t, base.Key(), bold.Key())
}

func TestParseHex(t *testing.T) {
	c, ok := ParseHex("#3498db")
	assert.True(t, ok)
	assert.Equal(t, Color{R: 0x34, G: 0x98, B: 0xdb}, c)

	c, ok = ParseHex("fff")
	assert.True(t, ok)
	assert.Equal(t, White, c)

	_, ok = ParseHex("#12")
	assert.False(t, ok)
	assert.Equal(t, Black, Hex("nope"))
}

func TestParseAlign(t *testing.T) {
	assert.Equal(t, AlignCenter, ParseAlign(" Center "))
	assert.Equal(t, AlignRight, ParseAlign("right"))
	assert.Equal(t, AlignLeft, ParseAlign(""))
}

func TestStylesAreFresh(t *testing.T) {
	a := Body()
	a.Font.Size = 99
	assert.Equal(t, 12.0, Body().Font.Size)
}
