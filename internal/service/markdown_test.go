package service

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\n\nSome **bold** text with a [link](https://example.com).")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("html = %q, want heading and bold markup", html)
	}
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Errorf("html = %q, want the link preserved", html)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("html = %q, script tag survived sanitization", html)
	}
}

func TestSanitizeHTMLKeepsLanguageClass(t *testing.T) {
	out := SanitizeHTML(`<pre><code class="language-go">fmt.Println()</code></pre>`)
	if !strings.Contains(out, `class="language-go"`) {
		t.Errorf("sanitized = %q, want the language class kept", out)
	}

	out = SanitizeHTML(`<code class="evil" onclick="x()">y</code>`)
	if strings.Contains(out, "evil") || strings.Contains(out, "onclick") {
		t.Errorf("sanitized = %q, disallowed attributes survived", out)
	}
}
