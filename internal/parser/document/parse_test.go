package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "time": 1718000000000,
  "version": "2.29.1",
  "blocks": [
    {"id": "h1", "type": "header", "data": {"text": "Title", "level": 2}},
    {"id": "p1", "type": "paragraph", "data": {"text": "Hello <b>world</b>"}},
    {"id": "l1", "type": "list", "data": {"style": "ordered", "items": ["one", {"content": "two", "items": [{"content": "two.a", "items": []}]}]}},
    {"id": "c1", "type": "checklist", "data": {"items": [{"text": "done", "checked": true}, {"text": "todo", "checked": false}]}},
    {"id": "q1", "type": "quote", "data": {"text": "Be brief", "caption": "Someone", "alignment": "center"}},
    {"id": "w1", "type": "warning", "data": {"title": "Note", "message": "Careful"}},
    {"id": "k1", "type": "code", "data": {"code": "x := 1"}},
    {"id": "d1", "type": "delimiter", "data": {}},
    {"id": "t1", "type": "table", "data": {"withHeadings": true, "content": [["a", "b", "c"], ["1", "2"]]}},
    {"id": "i1", "type": "image", "data": {"file": {"url": "pic.png"}, "caption": "A picture"}},
    {"id": "x1", "type": "embed", "data": {"service": "youtube"}}
  ]
}`

func TestParseAllKinds(t *testing.T) {
	doc, err := ParseBytes([]byte(sample))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 11)
	assert.Equal(t, "2.29.1", doc.Version)

	assert.Equal(t, Header{Level: 2, Text: "Title"}, doc.Blocks[0])
	assert.Equal(t, Paragraph{Text: "Hello <b>world</b>"}, doc.Blocks[1])
	assert.Equal(t, List{Style: ListOrdered, Items: []string{"one", "two", "two.a"}}, doc.Blocks[2])
	assert.Equal(t, Checklist{Items: []ChecklistItem{{"done", true}, {"todo", false}}}, doc.Blocks[3])
	assert.Equal(t, Quote{Text: "Be brief", Caption: "Someone", Alignment: "center"}, doc.Blocks[4])
	assert.Equal(t, Warning{Title: "Note", Message: "Careful"}, doc.Blocks[5])
	assert.Equal(t, Code{Code: "x := 1"}, doc.Blocks[6])
	assert.Equal(t, Delimiter{}, doc.Blocks[7])

	table, ok := doc.Blocks[8].(Table)
	require.True(t, ok)
	assert.True(t, table.HasHeaderRow)
	assert.Equal(t, 3, table.Columns())

	assert.Equal(t, Image{Source: "pic.png", Caption: "A picture"}, doc.Blocks[9])
	assert.Equal(t, Unknown{Type: "embed"}, doc.Blocks[10])
	assert.Equal(t, Kind("embed"), doc.Blocks[10].Kind())
}

func TestParseFatalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyDocument},
		{"whitespace", " \n\t", ErrEmptyDocument},
		{"no blocks key", `{"time": 1}`, ErrMissingBlocks},
		{"null blocks", `{"blocks": null}`, ErrMissingBlocks},
		{"zero blocks", `{"blocks": []}`, ErrNoBlocks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestParseInvalidBlockIsRecoverable(t *testing.T) {
	doc, err := ParseBytes([]byte(`{"blocks": [
		{"id": "bad", "type": "table", "data": {"content": "not a grid"}},
		{"id": "ok", "type": "paragraph", "data": {"text": "still here"}}
	]}`))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 2)

	inv, ok := doc.Blocks[0].(Invalid)
	require.True(t, ok)
	assert.Equal(t, KindTable, inv.Kind())
	assert.ErrorContains(t, inv.Err, `block "bad"`)
	assert.Equal(t, Paragraph{Text: "still here"}, doc.Blocks[1])
}

func TestParseHeaderLevelClamp(t *testing.T) {
	doc, err := ParseBytes([]byte(`{"blocks": [
		{"type": "header", "data": {"text": "a", "level": 9}},
		{"type": "header", "data": {"text": "b", "level": 0}},
		{"type": "header", "data": {"text": "c"}},
		{"type": "Header", "data": null}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, Header{Level: 6, Text: "a"}, doc.Blocks[0])
	assert.Equal(t, Header{Level: 1, Text: "b"}, doc.Blocks[1])
	assert.Equal(t, Header{Level: 1, Text: "c"}, doc.Blocks[2])
	assert.Equal(t, Header{Level: 1}, doc.Blocks[3])
}

func TestParseListDefaultsUnordered(t *testing.T) {
	doc, err := ParseBytes([]byte(`{"blocks": [{"type": "list", "data": {"items": ["x"]}}]}`))
	require.NoError(t, err)
	assert.Equal(t, List{Style: ListUnordered, Items: []string{"x"}}, doc.Blocks[0])
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Blocks, 11)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestKindsCoverVariants(t *testing.T) {
	kinds := map[Kind]bool{}
	for _, k := range Kinds() {
		kinds[k] = true
	}
	for _, b := range []Block{Header{}, Paragraph{}, List{}, Checklist{}, Quote{}, Warning{}, Code{}, Delimiter{}, Table{}, Image{}} {
		assert.True(t, kinds[b.Kind()], "%T", b)
	}
}
