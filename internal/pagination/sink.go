package pagination

// Sink accumulates draw ops into pages. It always holds an open page, so a
// pass with no content still yields one blank page.
type Sink struct {
	geom    Geometry
	pages   []*Page
	current *Page
}

// NewSink creates a sink with its first page open.
func NewSink(g Geometry) *Sink {
	s := &Sink{geom: g}
	s.open()
	return s
}

func (s *Sink) open() {
	s.current = &Page{
		Number: len(s.pages) + 1,
		Width:  s.geom.Width,
		Height: s.geom.Height,
	}
}

// Draw appends op to the open page.
func (s *Sink) Draw(op Op) {
	s.current.Ops = append(s.current.Ops, op)
}

// BreakPage finalizes the open page and opens the next one.
func (s *Sink) BreakPage() {
	s.pages = append(s.pages, s.current)
	s.open()
}

// PageCount is the number of pages including the open one.
func (s *Sink) PageCount() int { return len(s.pages) + 1 }

// Current returns the open page.
func (s *Sink) Current() *Page { return s.current }

// Pages finalizes the open page and returns every page in order. The sink
// must not be drawn to afterwards.
func (s *Sink) Pages() []*Page {
	out := append(s.pages, s.current)
	s.pages, s.current = nil, nil
	return out
}
