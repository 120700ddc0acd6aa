// Package pagination owns page geometry, the layout cursor and the page
// sink. The cursor's EnsureSpace is the only place a page break happens.
package pagination

// PageBreaker finalizes the current page and opens the next one.
type PageBreaker interface {
	BreakPage()
}

// Cursor tracks the vertical position on the current page. Y is measured
// from the page bottom and decreases as content is placed.
//
// A cursor belongs to a single render pass and must not be shared.
type Cursor struct {
	Y         float64
	PageIndex int

	geom    Geometry
	breaker PageBreaker
}

// NewCursor returns a cursor at the top of the first page.
func NewCursor(g Geometry, pb PageBreaker) *Cursor {
	return &Cursor{Y: g.Top(), geom: g, breaker: pb}
}

// Geometry returns the page frame the cursor moves in.
func (c *Cursor) Geometry() Geometry { return c.geom }

// Remaining is the height left above the bottom margin.
func (c *Cursor) Remaining() float64 { return c.Y - c.geom.Bottom() }

// EnsureSpace starts a new page when a block of height h would cross the
// bottom margin, and reports whether it did.
//
// A block taller than the content region still gets exactly one break and is
// then drawn from the top of the fresh page, overflowing the bottom margin.
func (c *Cursor) EnsureSpace(h float64) bool {
	if c.Y-h >= c.geom.Bottom() {
		return false
	}
	c.breaker.BreakPage()
	c.Y = c.geom.Top()
	c.PageIndex++
	return true
}

// Advance moves the cursor down by the consumed height plus spacing. Spacing
// never pushes the cursor below the bottom margin.
func (c *Cursor) Advance(consumed, spacing float64) {
	c.Y -= consumed
	if spacing > 0 {
		if room := c.Y - c.geom.Bottom(); spacing > room {
			spacing = max(room, 0)
		}
		c.Y -= spacing
	}
}
