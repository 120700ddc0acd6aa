// Package document decodes block documents (the Editor.js JSON export
// format) into an ordered, immutable sequence of typed blocks.
package document

// Kind discriminates block variants.
type Kind string

const (
	KindHeader    Kind = "header"
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
	KindChecklist Kind = "checklist"
	KindQuote     Kind = "quote"
	KindWarning   Kind = "warning"
	KindCode      Kind = "code"
	KindDelimiter Kind = "delimiter"
	KindTable     Kind = "table"
	KindImage     Kind = "image"
)

// Kinds returns every renderable kind.
func Kinds() []Kind {
	return []Kind{
		KindHeader, KindParagraph, KindList, KindChecklist, KindQuote,
		KindWarning, KindCode, KindDelimiter, KindTable, KindImage,
	}
}

// Block is one content unit of a document.
type Block interface {
	Kind() Kind
}

// Header is a heading of level 1 to 6.
type Header struct {
	Level int
	Text  string
}

// Paragraph holds inline HTML text.
type Paragraph struct {
	Text string
}

// ListStyle selects bullets or numbers.
type ListStyle string

const (
	ListUnordered ListStyle = "unordered"
	ListOrdered   ListStyle = "ordered"
)

// List holds inline HTML items, flattened from any nesting.
type List struct {
	Style ListStyle
	Items []string
}

// ChecklistItem is one checkbox entry.
type ChecklistItem struct {
	Text    string
	Checked bool
}

type Checklist struct {
	Items []ChecklistItem
}

// Quote is a pull quote with an optional caption.
type Quote struct {
	Text      string
	Caption   string
	Alignment string
}

type Warning struct {
	Title   string
	Message string
}

// Code is preformatted source text.
type Code struct {
	Code string
}

type Delimiter struct{}

// Table is a grid of inline HTML cells.
type Table struct {
	Rows         [][]string
	HasHeaderRow bool
}

// Columns returns the length of the longest row.
func (t Table) Columns() int {
	n := 0
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	return n
}

// Image references a picture by data URL, file path or http URL.
type Image struct {
	Source  string
	Caption string
}

// Unknown is a block of a type this package does not know.
type Unknown struct {
	Type string
}

// Invalid is a known block whose data could not be decoded.
type Invalid struct {
	Type string
	Err  error
}

func (Header) Kind() Kind    { return KindHeader }
func (Paragraph) Kind() Kind { return KindParagraph }
func (List) Kind() Kind      { return KindList }
func (Checklist) Kind() Kind { return KindChecklist }
func (Quote) Kind() Kind     { return KindQuote }
func (Warning) Kind() Kind   { return KindWarning }
func (Code) Kind() Kind      { return KindCode }
func (Delimiter) Kind() Kind { return KindDelimiter }
func (Table) Kind() Kind     { return KindTable }
func (Image) Kind() Kind     { return KindImage }
func (u Unknown) Kind() Kind { return Kind(u.Type) }
func (i Invalid) Kind() Kind { return Kind(i.Type) }
