package document

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML renders the document to its semantic HTML form. The output is
// a pure function of the tree: no state survives between calls. HTML is a
// derived artifact only and is never parsed back into a tree.
//
// Nodes of a type the renderer does not know are skipped silently so that
// documents written by a newer editor still render their known parts.
func RenderHTML(d Doc) string {
	var b strings.Builder
	for _, block := range d.Content {
		renderNode(&b, block)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node) {
	switch n.Type {
	case TypeParagraph:
		b.WriteString("<p>")
		renderChildren(b, n)
		b.WriteString("</p>")
	case TypeHeading:
		level := n.attrs().Level
		if level < 1 || level > 3 {
			level = 1
		}
		fmt.Fprintf(b, "<h%d>", level)
		renderChildren(b, n)
		fmt.Fprintf(b, "</h%d>", level)
	case TypeBulletList:
		b.WriteString("<ul>")
		renderChildren(b, n)
		b.WriteString("</ul>")
	case TypeOrderedList:
		b.WriteString("<ol>")
		renderChildren(b, n)
		b.WriteString("</ol>")
	case TypeListItem:
		b.WriteString("<li>")
		renderChildren(b, n)
		b.WriteString("</li>")
	case TypeBlockquote:
		b.WriteString("<blockquote>")
		renderChildren(b, n)
		b.WriteString("</blockquote>")
	case TypeCodeBlock:
		lang := n.attrs().Language
		if lang != "" {
			fmt.Fprintf(b, `<pre><code class="language-%s">`, html.EscapeString(lang))
		} else {
			b.WriteString("<pre><code>")
		}
		// Code blocks carry raw text children; marks do not apply.
		b.WriteString(html.EscapeString(collectText(n)))
		b.WriteString("</code></pre>")
	case TypeImage:
		attrs := n.attrs()
		if attrs.Src == "" {
			return
		}
		fmt.Fprintf(b, `<img src="%s" alt="%s">`,
			html.EscapeString(attrs.Src), html.EscapeString(attrs.Alt))
	case TypeHorizontalRule:
		b.WriteString("<hr>")
	case TypeText:
		renderText(b, n)
	default:
		// Unknown node type: drop it, but keep rendering siblings.
	}
}

func renderChildren(b *strings.Builder, n Node) {
	for _, child := range n.Content {
		renderNode(b, child)
	}
}

// renderText writes a text leaf wrapped in the tags for its marks, opened
// in mark order and closed in reverse.
func renderText(b *strings.Builder, n Node) {
	var closers []string
	for _, mark := range n.Marks {
		switch mark.Type {
		case MarkBold:
			b.WriteString("<strong>")
			closers = append(closers, "</strong>")
		case MarkItalic:
			b.WriteString("<em>")
			closers = append(closers, "</em>")
		case MarkStrike:
			b.WriteString("<s>")
			closers = append(closers, "</s>")
		case MarkCode:
			b.WriteString("<code>")
			closers = append(closers, "</code>")
		case MarkLink:
			href := mark.attrs().Href
			fmt.Fprintf(b, `<a href="%s" rel="noopener noreferrer">`, html.EscapeString(href))
			closers = append(closers, "</a>")
		}
	}
	b.WriteString(html.EscapeString(n.Text))
	for i := len(closers) - 1; i >= 0; i-- {
		b.WriteString(closers[i])
	}
}

func collectText(n Node) string {
	if n.Type == TypeText {
		return n.Text
	}
	var b strings.Builder
	for _, child := range n.Content {
		b.WriteString(collectText(child))
	}
	return b.String()
}
