package pdf

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPages(n int) []*pagination.Page {
	g := pagination.DefaultGeometry()
	out := make([]*pagination.Page, n)
	for i := range out {
		out[i] = &pagination.Page{Number: i + 1, Width: g.Width, Height: g.Height}
	}
	return out
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestRenderWritesEveryPage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewRenderer().Render(testPages(3), &out, RenderOptions{}))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out.String(), "/Count 3")
}

func TestRenderNoPages(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, NewRenderer().Render(nil, &out, RenderOptions{}))
	assert.Zero(t, out.Len())
}

func TestRenderOps(t *testing.T) {
	pages := testPages(1)
	pages[0].Ops = []pagination.Op{
		pagination.RectOp{X: 10, Y: 10, W: 100, H: 40, Fill: style.QuoteFill.Ptr()},
		pagination.RectOp{X: 10, Y: 60, W: 100, H: 40, Fill: style.WarningFill.Ptr(), Stroke: style.WarningStroke.Ptr(), LineWidth: 1, Radius: 6},
		pagination.TextOp{X: 20, Y: 30, Text: "Hello", Font: style.Helvetica(12), Color: style.Black},
		pagination.TextOp{X: 60, Y: 30, Text: "café", Font: style.Times(12).WithItalic(), Color: style.Gray},
		pagination.TextOp{X: 20, Y: 80, Text: "link", Font: style.Helvetica(12).WithUnderline(), Color: style.LinkColor, Link: "https://example.com", Width: 20},
	}

	var out bytes.Buffer
	require.NoError(t, NewRenderer().Render(pages, &out, RenderOptions{NoCompression: true}))
	pdf := out.String()
	assert.Contains(t, pdf, "(Hello) Tj")
	assert.Contains(t, pdf, "/URI")
	assert.Contains(t, pdf, "/Helvetica")
	assert.Contains(t, pdf, "/Times-Italic")
}

func TestRenderEmbedsImagesOnce(t *testing.T) {
	data := tinyPNG(t)
	pages := testPages(2)
	for _, p := range pages {
		p.Ops = []pagination.Op{
			pagination.ImageOp{X: 10, Y: 10, W: 20, H: 20, Name: "img-a", Data: data},
			pagination.ImageOp{X: 40, Y: 10, W: 20, H: 20, Name: "img-a", Data: data},
		}
	}

	var out bytes.Buffer
	require.NoError(t, NewRenderer().Render(pages, &out, RenderOptions{}))
	assert.Equal(t, 1, strings.Count(out.String(), "/Subtype /Image"))
}

func TestRenderSkipsBrokenImage(t *testing.T) {
	pages := testPages(1)
	pages[0].Ops = []pagination.Op{
		pagination.ImageOp{X: 10, Y: 10, W: 20, H: 20, Name: "broken", Data: []byte("not a png")},
		pagination.TextOp{X: 20, Y: 30, Text: "still here", Font: style.Helvetica(12)},
	}
	var out bytes.Buffer
	require.NoError(t, NewRenderer().Render(pages, &out, RenderOptions{NoCompression: true}))
	assert.Contains(t, out.String(), "(still here) Tj")
}

func TestRenderIsReproducible(t *testing.T) {
	opts := RenderOptions{
		Title:        "Report",
		Author:       "Ops",
		CreationDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	pages := testPages(1)
	pages[0].Ops = []pagination.Op{pagination.TextOp{X: 20, Y: 30, Text: "same", Font: style.Courier(10)}}

	var a, b bytes.Buffer
	require.NoError(t, NewRenderer().Render(pages, &a, opts))
	require.NoError(t, NewRenderer().Render(pages, &b, opts))
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Contains(t, a.String(), "/Title")
	assert.Contains(t, a.String(), "/CreationDate (D:20240102030405")
}
