package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string, marks ...Mark) Node {
	return Node{Type: TypeText, Text: s, Marks: marks}
}

func paragraph(children ...Node) Node {
	return Node{Type: TypeParagraph, Content: children}
}

func TestRenderHTMLBasicBlocks(t *testing.T) {
	doc := NewDoc(
		Node{Type: TypeHeading, Attrs: &Attrs{Level: 2}, Content: []Node{text("Title")}},
		paragraph(text("Hello "), text("world", Mark{Type: MarkBold})),
		Node{Type: TypeHorizontalRule},
	)

	got := RenderHTML(doc)
	assert.Equal(t, "<h2>Title</h2><p>Hello <strong>world</strong></p><hr>", got)
}

func TestRenderHTMLMarksNestAndEscape(t *testing.T) {
	doc := NewDoc(paragraph(
		text("a < b", Mark{Type: MarkItalic}, Mark{Type: MarkStrike}),
		text(" docs", Mark{Type: MarkLink, Attrs: &Attrs{Href: "https://example.com/?a=1&b=2"}}),
	))

	got := RenderHTML(doc)
	assert.Equal(t,
		`<p><em><s>a &lt; b</s></em><a href="https://example.com/?a=1&amp;b=2" rel="noopener noreferrer"> docs</a></p>`,
		got)
}

func TestRenderHTMLCodeBlock(t *testing.T) {
	doc := NewDoc(Node{
		Type:    TypeCodeBlock,
		Attrs:   &Attrs{Language: "go"},
		Content: []Node{text("if a < b {\n\treturn\n}")},
	})

	got := RenderHTML(doc)
	assert.Equal(t, "<pre><code class=\"language-go\">if a &lt; b {\n\treturn\n}</code></pre>", got)
}

func TestRenderHTMLLists(t *testing.T) {
	doc := NewDoc(Node{
		Type: TypeBulletList,
		Content: []Node{
			{Type: TypeListItem, Content: []Node{paragraph(text("one"))}},
			{Type: TypeListItem, Content: []Node{paragraph(text("two"))}},
		},
	})

	got := RenderHTML(doc)
	assert.Equal(t, "<ul><li><p>one</p></li><li><p>two</p></li></ul>", got)
}

func TestRenderHTMLImageAndUnknown(t *testing.T) {
	doc := NewDoc(
		Node{Type: TypeImage, Attrs: &Attrs{Src: "https://cdn.example.com/a.png", Alt: "diagram"}},
		Node{Type: "callout", Content: []Node{paragraph(text("dropped"))}},
		paragraph(text("kept")),
	)

	got := RenderHTML(doc)
	assert.Equal(t, `<img src="https://cdn.example.com/a.png" alt="diagram"><p>kept</p>`, got)
}

func TestRenderHTMLEmptyDoc(t *testing.T) {
	assert.Equal(t, "", RenderHTML(NewDoc()))
	assert.Equal(t, "", PlainText(NewDoc()))
}

func TestRenderHTMLIsPure(t *testing.T) {
	doc := NewDoc(
		paragraph(text("same "), text("tree", Mark{Type: MarkCode})),
		Node{Type: TypeBlockquote, Content: []Node{paragraph(text("quoted"))}},
	)

	first := RenderHTML(doc)
	second := RenderHTML(doc)
	assert.Equal(t, first, second)
	assert.Equal(t, PlainText(doc), PlainText(doc))
}

func TestPlainTextJoinsBlocks(t *testing.T) {
	doc := NewDoc(
		paragraph(text("Hello "), text("world", Mark{Type: MarkBold})),
		Node{Type: TypeImage, Attrs: &Attrs{Src: "https://cdn.example.com/a.png"}},
		Node{Type: TypeBulletList, Content: []Node{
			{Type: TypeListItem, Content: []Node{paragraph(text("first item"))}},
			{Type: TypeListItem, Content: []Node{paragraph(text("second"))}},
		}},
	)

	assert.Equal(t, "Hello world\nfirst item second", PlainText(doc))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, NewDoc().IsEmpty())
	assert.True(t, NewDoc(paragraph()).IsEmpty())
	assert.True(t, NewDoc(paragraph(text(""))).IsEmpty())
	assert.False(t, NewDoc(paragraph(text("x"))).IsEmpty())
	assert.False(t, NewDoc(Node{Type: TypeImage, Attrs: &Attrs{Src: "u"}}).IsEmpty())
}

func TestJSONRoundTrip(t *testing.T) {
	doc := NewDoc(
		Node{Type: TypeHeading, Attrs: &Attrs{Level: 1}, Content: []Node{text("Post")}},
		paragraph(
			text("intro ", Mark{Type: MarkBold}),
			text("link", Mark{Type: MarkLink, Attrs: &Attrs{Href: "https://example.com"}}),
		),
		Node{Type: TypeOrderedList, Attrs: &Attrs{Start: 3}, Content: []Node{
			{Type: TypeListItem, Content: []Node{paragraph(text("a"))}},
		}},
	)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Doc
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, doc, decoded)
}
