package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxSegmentLength is the segment length budget in characters.
const DefaultMaxSegmentLength = 700

// Keyword markers force a segment boundary immediately before them.
const (
	KeywordYearHeading = "###"
	KeywordOpening     = "**Opening"
	KeywordMemorable   = "**Memorable"
)

// keywords lists every boundary marker in match order.
var keywords = []string{KeywordYearHeading, KeywordOpening, KeywordMemorable}

// anyLineEnding matches \r\n, \r and \n.
var anyLineEnding = regexp.MustCompile(`\r\n|\r|\n`)

// Flatten replaces every line ending with a single space so the whole
// document becomes one line of space-separated words.
func Flatten(content string) string {
	return anyLineEnding.ReplaceAllString(content, " ")
}

// IsKeyword reports whether word is exactly one of the boundary markers.
func IsKeyword(word string) bool {
	for _, k := range keywords {
		if word == k {
			return true
		}
	}
	return false
}

// Split cuts flattened content into segments of at most maxLength characters
// without breaking words. A keyword marker always starts a new segment.
// A single word longer than maxLength is kept whole in its own segment.
// A maxLength <= 0 selects DefaultMaxSegmentLength.
func Split(content string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultMaxSegmentLength
	}

	var (
		segments []string
		current  []string
		length   int // accumulated characters, one separator per word
	)

	emit := func() {
		if len(current) > 0 {
			segments = append(segments, strings.Join(current, " "))
		}
		current = nil
		length = 0
	}

	for _, word := range strings.Split(content, " ") {
		wordLength := utf8.RuneCountInString(word) + 1

		if IsKeyword(word) || length+wordLength > maxLength {
			emit()
		}

		current = append(current, word)
		length += wordLength
	}
	emit()

	return filterSegments(segments)
}

// filterSegments drops segments that are exactly a bare marker. Segments
// holding only empty words or spaces are content and are kept.
func filterSegments(segments []string) []string {
	kept := segments[:0]
	for _, s := range segments {
		if IsKeyword(s) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
