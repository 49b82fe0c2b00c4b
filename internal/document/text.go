package document

import "strings"

// PlainText flattens the document to its text content, one line per block.
// The projection feeds word counting and search indexing, never display.
// Image nodes contribute nothing.
func PlainText(d Doc) string {
	var lines []string
	for _, block := range d.Content {
		line := strings.Join(strings.Fields(blockText(block)), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// blockText concatenates text leaves as written; nested blocks (list items,
// quoted paragraphs) are separated by a space so their words stay distinct.
func blockText(n Node) string {
	if n.Type == TypeText {
		return n.Text
	}
	var b strings.Builder
	for _, child := range n.Content {
		if child.Type != TypeText {
			b.WriteByte(' ')
		}
		b.WriteString(blockText(child))
		if child.Type != TypeText {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
