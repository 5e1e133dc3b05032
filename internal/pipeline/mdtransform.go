package pipeline

import (
	"regexp"
)

// strongPattern matches **text** non-greedily, so "**a** and **b**"
// yields two spans.
var strongPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// InlineRenderer turns the Markdown of a single segment into inline HTML.
type InlineRenderer interface {
	RenderInline(segment string) string
}

// StrongRenderer is the lossy default engine: **bold** spans become
// <strong> tags and everything else passes through untouched, raw HTML included.
type StrongRenderer struct{}

// RenderInline replaces every **bold** span with <strong>bold</strong>.
func (StrongRenderer) RenderInline(segment string) string {
	return strongPattern.ReplaceAllString(segment, "<strong>$1</strong>")
}
