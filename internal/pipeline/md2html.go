package pipeline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// GoldmarkRenderer renders the inline subset of a segment with goldmark.
// The parser knows paragraphs, code spans and emphasis only: a flattened
// segment is always a single paragraph, and "###" stays literal text
// instead of becoming a heading. Text is HTML-escaped.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)
	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not set: raw HTML in the source is escaped.
		),
	)
	return &GoldmarkRenderer{md: md}
}

// RenderInline converts segment and unwraps the surrounding paragraph.
// On a conversion error the segment is returned escaped, unformatted.
func (r *GoldmarkRenderer) RenderInline(segment string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(segment), &buf); err != nil {
		return escapeText(segment)
	}
	return unwrapParagraph(buf.String())
}

// unwrapParagraph strips the <p>...</p> pair goldmark puts around a
// single-paragraph document.
func unwrapParagraph(s string) string {
	s = strings.TrimRight(s, "\n")
	s = strings.TrimPrefix(s, "<p>")
	return strings.TrimSuffix(s, "</p>")
}

// escapeText applies the same escaping goldmark uses for text nodes.
func escapeText(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
