package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math/rand/v2"
	"regexp"
	"strings"
)

// ErrCardRender indicates a card snippet template failed to execute.
var ErrCardRender = errors.New("card template rendering failed")

// Cosmetic layout classes. The choice between them has no semantic effect.
const (
	VariantA = "notebook-paper-a"
	VariantB = "notebook-paper-b"
)

// yearHeadingPattern captures the four-digit year following a ### marker.
var yearHeadingPattern = regexp.MustCompile(`###\s*(\d{4})`)

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// globalSource draws from the unseeded math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandomSource returns the production source, which is never seeded.
func DefaultRandomSource() RandomSource {
	return globalSource{}
}

// CardData is passed to the title and body snippet templates.
type CardData struct {
	Variant string
	Title   string        // four-digit year, title template only
	Body    template.HTML // rendered inline HTML, trusted as-is
}

// CardFiller wraps rendered segments in the title or body snippet template.
type CardFiller struct {
	title *template.Template
	body  *template.Template
	rand  RandomSource
}

// NewCardFiller parses the title and body snippet templates.
// A nil src selects DefaultRandomSource.
func NewCardFiller(titleTmpl, bodyTmpl string, src RandomSource) (*CardFiller, error) {
	title, err := template.New("title").Parse(titleTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing title template: %w", err)
	}
	body, err := template.New("body").Parse(bodyTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing body template: %w", err)
	}
	if src == nil {
		src = DefaultRandomSource()
	}
	return &CardFiller{title: title, body: body, rand: src}, nil
}

// IsTitleSegment reports whether a rendered segment opens a title section.
func IsTitleSegment(segment string) bool {
	return strings.HasPrefix(segment, KeywordYearHeading)
}

// ExtractYearHeading finds the ###-prefixed year in segment.
// It returns the year and the segment with the heading and every remaining
// ### marker removed. ok is false when no four-digit year follows a marker.
func ExtractYearHeading(segment string) (year, body string, ok bool) {
	loc := yearHeadingPattern.FindStringSubmatchIndex(segment)
	if loc == nil {
		return "", "", false
	}
	year = segment[loc[2]:loc[3]]
	body = segment[:loc[0]] + segment[loc[1]:]
	return year, stripMarkers(body), true
}

// Fill renders one card. Title segments carrying a year use the title
// template; everything else, including titles without a year, uses the body
// template.
func (f *CardFiller) Fill(segment string, title bool) (string, error) {
	if title {
		if year, body, ok := ExtractYearHeading(segment); ok {
			return f.execute(f.title, CardData{
				Variant: f.variant(),
				Title:   year,
				Body:    template.HTML(body), // #nosec G203 -- output of the inline renderer
			})
		}
		segment = stripMarkers(segment)
	}
	return f.execute(f.body, CardData{
		Variant: f.variant(),
		Body:    template.HTML(segment), // #nosec G203 -- output of the inline renderer
	})
}

// variant picks one of the two layout classes with equal probability.
func (f *CardFiller) variant() string {
	if f.rand.Float64() < 0.5 {
		return VariantB
	}
	return VariantA
}

func (f *CardFiller) execute(tmpl *template.Template, data CardData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCardRender, err)
	}
	return buf.String(), nil
}

func stripMarkers(s string) string {
	return strings.ReplaceAll(s, KeywordYearHeading, "")
}
