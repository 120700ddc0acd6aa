package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

func parse(t *testing.T, markup string) []text.Run {
	t.Helper()
	runs, err := NewParser().ParseString(markup, style.Body())
	require.NoError(t, err)
	return runs
}

func TestParsePlainText(t *testing.T) {
	runs := parse(t, "  Hello \n  world  ")
	require.Len(t, runs, 1)
	assert.Equal(t, "Hello world", runs[0].Text)
	assert.Equal(t, style.Body().Font, runs[0].Font)
}

func TestParseInlineStyles(t *testing.T) {
	runs := parse(t, `A <b>bold</b> <i>it</i> <u>under</u> <mark>hi</mark> <code>x()</code>`)

	byText := map[string]text.Run{}
	for _, r := range runs {
		byText[r.Text] = r
	}
	require.Contains(t, byText, "bold")
	assert.True(t, byText["bold"].Font.Bold)
	assert.True(t, byText["it"].Font.Italic)
	assert.True(t, byText["under"].Font.Underline)
	assert.True(t, byText["hi"].Font.Underline, "mark renders as underline")
	assert.Equal(t, style.FamilyCourier, byText["x()"].Font.Family)
	assert.Equal(t, style.FamilyTimes, byText["bold"].Font.Family)
}

func TestParseNestedStyles(t *testing.T) {
	runs := parse(t, `<b>bold <i>both</i></b>`)
	require.Len(t, runs, 2)
	assert.Equal(t, "bold ", runs[0].Text)
	assert.True(t, runs[1].Font.Bold)
	assert.True(t, runs[1].Font.Italic)
}

func TestParseLink(t *testing.T) {
	runs := parse(t, `see <a href="https://example.com" class="x">the site</a>`)
	require.Len(t, runs, 2)
	link := runs[1]
	assert.Equal(t, "the site", link.Text)
	assert.Equal(t, "https://example.com", link.Link)
	assert.Equal(t, style.LinkColor, link.Color)
	assert.True(t, link.Font.Underline)
	assert.Empty(t, runs[0].Link)
}

func TestParseBreaks(t *testing.T) {
	runs := parse(t, "one<br>two<br/><br>")
	require.Len(t, runs, 3)
	assert.Equal(t, "one", runs[0].Text)
	assert.Equal(t, text.Break, runs[1].Text)
	assert.Equal(t, "two", runs[2].Text)
}

func TestParseEntitiesAndCharset(t *testing.T) {
	runs := parse(t, "caf&eacute;&nbsp;au&amp;lait &#128512;")
	require.Len(t, runs, 1)
	assert.Equal(t, "café au&lait", runs[0].Text)
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, parse(t, ""))
	assert.Empty(t, parse(t, "   <b> </b> "))
}

func TestParseSkipsScripts(t *testing.T) {
	runs := parse(t, "a<script>alert(1)</script>b")
	require.Len(t, runs, 1)
	assert.Equal(t, "ab", runs[0].Text)
}
