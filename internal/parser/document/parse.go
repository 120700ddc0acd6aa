package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Fatal input errors.
var (
	ErrEmptyDocument = errors.New("document is empty")
	ErrMissingBlocks = errors.New(`document has no "blocks" key`)
	ErrNoBlocks      = errors.New("document has no blocks")
)

// Document is a decoded block document.
type Document struct {
	Time    int64
	Version string
	Blocks  []Block
}

type rawDocument struct {
	Time    int64       `json:"time"`
	Version string      `json:"version"`
	Blocks  *[]rawBlock `json:"blocks"`
}

type rawBlock struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ParseFile reads and decodes the document at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return ParseBytes(data)
}

// Parse decodes a document from r.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes a document. Structural problems are fatal; a block whose
// data does not decode becomes an Invalid block instead.
func ParseBytes(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if raw.Blocks == nil {
		return nil, ErrMissingBlocks
	}
	if len(*raw.Blocks) == 0 {
		return nil, ErrNoBlocks
	}

	doc := &Document{Time: raw.Time, Version: raw.Version, Blocks: make([]Block, 0, len(*raw.Blocks))}
	for _, rb := range *raw.Blocks {
		doc.Blocks = append(doc.Blocks, decodeBlock(rb))
	}
	return doc, nil
}

func decodeBlock(rb rawBlock) Block {
	kind := Kind(strings.ToLower(strings.TrimSpace(rb.Type)))
	data := rb.Data
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		data = []byte("{}")
	}

	var (
		b   Block
		err error
	)
	switch kind {
	case KindHeader:
		b, err = decodeHeader(data)
	case KindParagraph:
		var d struct {
			Text string `json:"text"`
		}
		err = json.Unmarshal(data, &d)
		b = Paragraph{Text: d.Text}
	case KindList:
		b, err = decodeList(data)
	case KindChecklist:
		var d struct {
			Items []struct {
				Text    string `json:"text"`
				Checked bool   `json:"checked"`
			} `json:"items"`
		}
		err = json.Unmarshal(data, &d)
		cl := Checklist{}
		for _, it := range d.Items {
			cl.Items = append(cl.Items, ChecklistItem{Text: it.Text, Checked: it.Checked})
		}
		b = cl
	case KindQuote:
		var d struct {
			Text      string `json:"text"`
			Caption   string `json:"caption"`
			Alignment string `json:"alignment"`
		}
		err = json.Unmarshal(data, &d)
		b = Quote{Text: d.Text, Caption: d.Caption, Alignment: d.Alignment}
	case KindWarning:
		var d struct {
			Title   string `json:"title"`
			Message string `json:"message"`
		}
		err = json.Unmarshal(data, &d)
		b = Warning{Title: d.Title, Message: d.Message}
	case KindCode:
		var d struct {
			Code string `json:"code"`
		}
		err = json.Unmarshal(data, &d)
		b = Code{Code: d.Code}
	case KindDelimiter:
		b = Delimiter{}
	case KindTable:
		var d struct {
			Content      [][]string `json:"content"`
			WithHeadings bool       `json:"withHeadings"`
		}
		err = json.Unmarshal(data, &d)
		b = Table{Rows: d.Content, HasHeaderRow: d.WithHeadings}
	case KindImage:
		var d struct {
			URL  string `json:"url"`
			File struct {
				URL string `json:"url"`
			} `json:"file"`
			Caption string `json:"caption"`
		}
		err = json.Unmarshal(data, &d)
		src := d.URL
		if src == "" {
			src = d.File.URL
		}
		b = Image{Source: src, Caption: d.Caption}
	default:
		return Unknown{Type: rb.Type}
	}
	if err != nil {
		return Invalid{Type: string(kind), Err: fmt.Errorf("block %q: %w", rb.ID, err)}
	}
	return b
}

func decodeHeader(data []byte) (Block, error) {
	var d struct {
		Text  string       `json:"text"`
		Level *json.Number `json:"level"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	level := 1
	if d.Level != nil {
		n, err := d.Level.Int64()
		if err != nil {
			return nil, fmt.Errorf("header level: %w", err)
		}
		level = int(min(max(n, 1), 6))
	}
	return Header{Level: level, Text: d.Text}, nil
}

// listItem is either a plain string or a nested {content, items} object.
type listItem struct {
	Content string
	Items   []listItem
}

func (li *listItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		li.Content = s
		return nil
	}
	var obj struct {
		Content string     `json:"content"`
		Text    string     `json:"text"`
		Items   []listItem `json:"items"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	li.Content = obj.Content
	if li.Content == "" {
		li.Content = obj.Text
	}
	li.Items = obj.Items
	return nil
}

func flatten(items []listItem, out []string) []string {
	for _, it := range items {
		out = append(out, it.Content)
		out = flatten(it.Items, out)
	}
	return out
}

func decodeList(data []byte) (Block, error) {
	var d struct {
		Style string     `json:"style"`
		Items []listItem `json:"items"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	st := ListUnordered
	if strings.EqualFold(d.Style, string(ListOrdered)) {
		st = ListOrdered
	}
	return List{Style: st, Items: flatten(d.Items, nil)}, nil
}
