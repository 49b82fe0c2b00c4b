package service

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)

	// sanitizer runs over every HTML string we persist or return, whether
	// rendered from a document tree or from imported markdown. The class
	// allowance keeps code-block language hints for client-side highlighting.
	sanitizer = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[a-zA-Z0-9-]+$`)).OnElements("code")
		return p
	}()
)

// SanitizeHTML strips anything outside the allowed markup from rendered
// post HTML.
func SanitizeHTML(raw string) string {
	return sanitizer.Sanitize(raw)
}

// RenderMarkdown converts legacy markdown (posts migrated from the old MDX
// pipeline) to sanitized HTML.
func RenderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}
