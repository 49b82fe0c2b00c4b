// Package document models the structured rich-text tree authored in the
// admin editor and derives its read-only projections (HTML, plain text).
// The tree is the canonical representation; derived values are never
// edited independently.
package document

// Known node types. The editor may introduce new types over time; anything
// outside this set is carried through serialization untouched and skipped
// by the renderers.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeImage          = "image"
	TypeHorizontalRule = "horizontalRule"
	TypeText           = "text"
)

// Known mark types on text leaves.
const (
	MarkBold   = "bold"
	MarkItalic = "italic"
	MarkStrike = "strike"
	MarkCode   = "code"
	MarkLink   = "link"
)

// Attrs carries the attributes a node may have. Only the fields relevant
// to the node's type are set; everything else stays at its zero value.
type Attrs struct {
	Level    int    `json:"level,omitempty"`
	Start    int    `json:"start,omitempty"`
	Language string `json:"language,omitempty"`
	Src      string `json:"src,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Title    string `json:"title,omitempty"`
	Href     string `json:"href,omitempty"`
	Target   string `json:"target,omitempty"`
}

// Mark is an inline formatting annotation on a text leaf.
type Mark struct {
	Type  string `json:"type"`
	Attrs *Attrs `json:"attrs,omitempty"`
}

// Node is one node of the document tree. Text leaves set Text; container
// nodes set Content.
type Node struct {
	Type    string `json:"type"`
	Attrs   *Attrs `json:"attrs,omitempty"`
	Marks   []Mark `json:"marks,omitempty"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// Doc is the root of a document tree: an ordered sequence of block nodes.
type Doc struct {
	Type    string `json:"type"`
	Content []Node `json:"content,omitempty"`
}

// NewDoc returns an empty document.
func NewDoc(blocks ...Node) Doc {
	return Doc{Type: TypeDoc, Content: blocks}
}

// IsEmpty reports whether the document carries no publishable content:
// no text anywhere and no image node. A tree of empty paragraphs is empty.
func (d Doc) IsEmpty() bool {
	for _, block := range d.Content {
		if nodeHasContent(block) {
			return false
		}
	}
	return true
}

func nodeHasContent(n Node) bool {
	if n.Type == TypeImage {
		return true
	}
	if n.Type == TypeText && n.Text != "" {
		return true
	}
	for _, child := range n.Content {
		if nodeHasContent(child) {
			return true
		}
	}
	return false
}

func (n Node) attrs() Attrs {
	if n.Attrs == nil {
		return Attrs{}
	}
	return *n.Attrs
}

func (m Mark) attrs() Attrs {
	if m.Attrs == nil {
		return Attrs{}
	}
	return *m.Attrs
}
