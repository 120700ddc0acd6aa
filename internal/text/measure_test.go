package text

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/blockpdf/internal/style"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
	"tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis " +
	"nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat."

func bodyRuns(s string) []Run {
	return Plain(s, style.Body())
}

func TestStringWidth(t *testing.T) {
	m := NewMeasurer()
	f := style.Helvetica(12)

	assert.Zero(t, m.StringWidth("", f))
	w := m.StringWidth("Hello", f)
	assert.Greater(t, w, 0.0)
	assert.Equal(t, w, m.StringWidth("Hello", f.WithUnderline()), "underline does not change metrics")
	assert.Greater(t, m.StringWidth("Hello", f.WithBold()), w)
	assert.InDelta(t, 2*w, m.StringWidth("Hello", style.Helvetica(24)), 1e-9)
}

func TestMeasureIsIdempotent(t *testing.T) {
	m := NewMeasurer()
	runs := bodyRuns(lorem)

	a := m.Measure(runs, 200, 15)
	b := m.Measure(runs, 200, 15)
	assert.Equal(t, a, b)
}

func TestMeasureMonotonicInWidth(t *testing.T) {
	m := NewMeasurer()
	runs := bodyRuns(lorem + " " + strings.Repeat("x", 60))

	prev := -1.0
	for _, w := range []float64{600, 400, 250, 120, 60, 30} {
		_, h := m.Measure(runs, w, 15).Size()
		if prev >= 0 {
			assert.GreaterOrEqual(t, h, prev, "narrowing to %v must not reduce height", w)
		}
		prev = h
	}
}

// randomRuns builds mixed-font runs with occasional words far wider than any
// line. Runs may start or end mid-word so adjacent runs glue together.
func randomRuns(r *rand.Rand) []Run {
	fonts := []style.Font{
		style.Times(12),
		style.Helvetica(11).WithBold(),
		style.Courier(10).WithItalic(),
		style.Times(16).WithBold().WithItalic(),
	}
	var runs []Run
	for i := 0; i < 2+r.Intn(5); i++ {
		var sb strings.Builder
		for j := 0; j < 1+r.Intn(8); j++ {
			if j > 0 || r.Intn(3) > 0 {
				sb.WriteByte(' ')
			}
			n := 1 + r.Intn(10)
			if r.Intn(4) == 0 {
				n = 15 + r.Intn(50)
			}
			sb.WriteString(strings.Repeat(string(rune('a'+r.Intn(26))), n))
		}
		runs = append(runs, Run{Text: sb.String(), Font: fonts[r.Intn(len(fonts))]})
	}
	return runs
}

func TestMeasureMonotonicMixedRuns(t *testing.T) {
	m := NewMeasurer()
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		runs := randomRuns(r)
		prev := m.Measure(runs, 10, 15)
		for w := 11.0; w <= 400; w++ {
			l := m.Measure(runs, w, 15)
			if !assert.LessOrEqual(t, len(l.Lines), len(prev.Lines), "trial %d: widening %v to %v added lines", trial, w-1, w) {
				return
			}
			for i, ln := range l.Lines {
				if len(ln.Words) == 1 && len(ln.Words[0].Pieces) == 1 && len([]rune(ln.Words[0].Pieces[0].Text)) == 1 {
					continue
				}
				assert.LessOrEqual(t, ln.Width, w+1e-9, "trial %d width %v line %d", trial, w, i)
			}
			prev = l
		}
	}
}

func TestMeasureOverlongWordStartsNewLine(t *testing.T) {
	m := NewMeasurer()
	f := style.Times(12)
	l := m.Measure([]Run{{Text: "j " + strings.Repeat("d", 40), Font: f}}, 120, 15)

	require.Greater(t, len(l.Lines), 2)
	require.Len(t, l.Lines[0].Words, 1)
	assert.Equal(t, "j", l.Lines[0].Words[0].Pieces[0].Text)
	assert.False(t, l.Lines[0].Hard)
}

func TestMeasureWrapsWithinWidth(t *testing.T) {
	m := NewMeasurer()
	l := m.Measure(bodyRuns(lorem), 180, 15)

	require.Greater(t, len(l.Lines), 1)
	assert.InDelta(t, float64(len(l.Lines))*15, l.Height, 1e-9)
	for i, ln := range l.Lines {
		assert.LessOrEqual(t, ln.Width, 180.0, "line %d", i)
		assert.Equal(t, i == len(l.Lines)-1, ln.Hard, "only the last line is hard")
	}
}

func TestMeasureHardBreak(t *testing.T) {
	m := NewMeasurer()
	f := style.Times(12)
	runs := []Run{{Text: "one", Font: f}, {Text: Break, Font: f}, {Text: "two", Font: f}}

	l := m.Measure(runs, 500, 15)
	require.Len(t, l.Lines, 2)
	assert.True(t, l.Lines[0].Hard)
	assert.Equal(t, "one", l.Lines[0].Words[0].Pieces[0].Text)
}

func TestMeasureGluesAdjacentRuns(t *testing.T) {
	m := NewMeasurer()
	f := style.Times(12)
	runs := []Run{{Text: "bo", Font: f.WithBold()}, {Text: "ld text", Font: f}}

	l := m.Measure(runs, 500, 15)
	require.Len(t, l.Lines, 1)
	require.Len(t, l.Lines[0].Words, 2)
	assert.Len(t, l.Lines[0].Words[0].Pieces, 2)
	assert.Zero(t, l.Lines[0].Words[0].Space)
	assert.Greater(t, l.Lines[0].Words[1].Space, 0.0)
}

func TestMeasureSplitsLongWords(t *testing.T) {
	m := NewMeasurer()
	l := m.Measure(bodyRuns(strings.Repeat("W", 80)), 100, 15)

	require.Greater(t, len(l.Lines), 1)
	for _, ln := range l.Lines {
		assert.LessOrEqual(t, ln.Width, 100.0)
	}
}

func TestMeasureEmpty(t *testing.T) {
	l := NewMeasurer().Measure(bodyRuns("   "), 100, 15)
	assert.True(t, l.Empty())
	assert.Zero(t, l.Height)
}

func TestMeasurePreformatted(t *testing.T) {
	m := NewMeasurer()
	p := style.CodeText()
	src := "func main() {\n\tfmt.Println(\"hi\")\n\n}\n"

	l := m.MeasurePreformatted(SanitizePreformatted(src), p, 400)
	require.Len(t, l.Lines, 4)
	assert.Equal(t, "    fmt.Println(\"hi\")", l.Lines[1].Words[0].Pieces[0].Text)
	assert.Empty(t, l.Lines[2].Words, "blank lines are kept")
	assert.InDelta(t, 4*p.Leading, l.Height, 1e-9)
}

func TestMeasurePreformattedWrapsLongLines(t *testing.T) {
	m := NewMeasurer()
	p := style.CodeText()
	long := strings.Repeat("abc ", 40) + strings.Repeat("z", 120)

	l := m.MeasurePreformatted(long, p, 200)
	require.Greater(t, len(l.Lines), 2)
	for _, ln := range l.Lines {
		assert.LessOrEqual(t, ln.Width, 200.0)
	}
}

func TestFitImage(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		maxW, maxH   float64
		wantW, wantH float64
	}{
		{"fits", 100, 50, 400, 400, 100, 50},
		{"too wide", 800, 400, 400, 400, 400, 200},
		{"too tall", 200, 1000, 400, 500, 100, 500},
		{"both", 1000, 2000, 300, 300, 150, 300},
		{"zero", 0, 10, 100, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, scale := FitImage(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.InDelta(t, tt.wantW, w, 1e-9)
			assert.InDelta(t, tt.wantH, h, 1e-9)
			assert.LessOrEqual(t, scale, 1.0)
			assert.LessOrEqual(t, w, tt.maxW)
			assert.LessOrEqual(t, h, tt.maxH)
		})
	}
}
