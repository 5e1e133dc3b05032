package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrPageRender indicates the page scaffold template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// Page scaffold defaults.
const (
	DefaultPageTitle       = "GAC History"
	DefaultStylesheet      = "../styles/gac-history-notecards.css"
	DefaultBackgroundPages = 100
)

// PageData is passed to the page scaffold template.
type PageData struct {
	Title           string
	Stylesheet      string          // href, relative to the output file
	BackgroundPages int             // decorative pages scattered by the inline script
	Cards           []template.HTML // filled snippets, in order
}

// PageRenderer renders a batch of cards into a complete HTML document.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the page scaffold template.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// NewPageData builds PageData from a batch, filling unset scaffold fields
// with their defaults.
func NewPageData(batch Batch, title, stylesheet string, backgroundPages int) PageData {
	if title == "" {
		title = DefaultPageTitle
	}
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	if backgroundPages <= 0 {
		backgroundPages = DefaultBackgroundPages
	}
	cards := make([]template.HTML, len(batch.Cards))
	for i, c := range batch.Cards {
		cards[i] = template.HTML(c.HTML) // #nosec G203 -- produced by CardFiller
	}
	return PageData{
		Title:           title,
		Stylesheet:      stylesheet,
		BackgroundPages: backgroundPages,
		Cards:           cards,
	}
}

// Render executes the scaffold for data.
func (p *PageRenderer) Render(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
