package notecards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-notecards/internal/assets"
	"github.com/alnah/go-notecards/internal/fileutil"
	"github.com/alnah/go-notecards/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.InlineRenderer = pipeline.StrongRenderer{}
	_ pipeline.InlineRenderer = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.RandomSource   = RandomSource(nil)
)

// Generator turns a Markdown document into notecard pages.
// Create with NewGenerator(), use Generate() and Write(), and Close() when done.
type Generator struct {
	cfg      generatorConfig
	loader   assets.AssetLoader
	renderer pipeline.InlineRenderer
	filler   *pipeline.CardFiller
	pages    *pipeline.PageRenderer
	printer  pdfPrinter
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithMaxSegmentLength, WithEngine, WithPDF).
// Returns error if an option is invalid or the template set cannot be loaded.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			maxSegmentLength:  DefaultMaxSegmentLength,
			titlesPerDocument: DefaultTitlesPerDocument,
			engine:            DefaultEngine,
			prefix:            DefaultPrefix,
			pageTitle:         DefaultPageTitle,
			stylesheet:        DefaultStylesheet,
			backgroundPages:   DefaultBackgroundPages,
			templateSet:       assets.DefaultTemplateSetName,
			timeout:           defaultTimeout,
		},
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.cfg.validate(); err != nil {
		return nil, err
	}

	if g.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		g.loader = resolver
	}

	ts, err := g.loader.LoadTemplateSet(g.cfg.templateSet)
	if err != nil {
		return nil, wrapAssetError(err)
	}

	switch g.cfg.engine {
	case EngineGoldmark:
		g.renderer = pipeline.NewGoldmarkRenderer()
	default:
		g.renderer = pipeline.StrongRenderer{}
	}

	g.filler, err = pipeline.NewCardFiller(ts.Title, ts.Body, g.cfg.random)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, ts.Name, err)
	}
	g.pages, err = pipeline.NewPageRenderer(ts.Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, ts.Name, err)
	}

	// Create PDF printer if requested and not injected (e.g., by tests)
	if g.cfg.pdf && g.printer == nil {
		g.printer = newRodPrinter(g.cfg.timeout)
	}

	return g, nil
}

// validate checks option values. Zero values were replaced by defaults
// before options ran, so only explicitly set values can fail here.
func (c *generatorConfig) validate() error {
	if c.maxSegmentLength < 1 || c.maxSegmentLength > MaxMaxSegmentLength {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidMaxLength, c.maxSegmentLength, MaxMaxSegmentLength)
	}
	if c.titlesPerDocument < 1 || c.titlesPerDocument > MaxTitlesPerDocument {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidTitlesPerDocument, c.titlesPerDocument, MaxTitlesPerDocument)
	}
	if c.backgroundPages < 0 || c.backgroundPages > MaxBackgroundPages {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidBackgroundPages, c.backgroundPages, MaxBackgroundPages)
	}
	if c.engine != EngineStrong && c.engine != EngineGoldmark {
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidEngine, c.engine, EngineStrong, EngineGoldmark)
	}
	if err := fileutil.ValidateStem(c.prefix); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidPrefix, c.prefix, err)
	}
	return nil
}

// wrapAssetError maps asset loader errors to the library's sentinels.
func wrapAssetError(err error) error {
	switch {
	case errors.Is(err, assets.ErrIncompleteTemplateSet):
		return fmt.Errorf("%w: %v", ErrIncompleteTemplateSet, err)
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return fmt.Errorf("%w: %v", ErrTemplateSetNotFound, err)
	case errors.Is(err, assets.ErrInvalidSetName), errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return fmt.Errorf("loading template set: %w", err)
	}
}

// Generate splits the Markdown into segments, fills a card per segment and
// groups the cards into pages. Nothing is written; see Write.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	segments := pipeline.Split(pipeline.Flatten(input.Markdown), g.cfg.maxSegmentLength)

	cards := make([]pipeline.Card, 0, len(segments))
	for _, segment := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rendered := g.renderer.RenderInline(segment)
		title := pipeline.IsTitleSegment(rendered)
		html, err := g.filler.Fill(rendered, title)
		if err != nil {
			return nil, fmt.Errorf("filling card: %w", err)
		}
		cards = append(cards, pipeline.Card{Segment: rendered, Title: title, HTML: html})
	}

	batches := pipeline.Assemble(cards, g.cfg.titlesPerDocument)

	res := &Result{
		Segments:  len(segments),
		Documents: make([]Document, 0, len(batches)),
	}
	for _, batch := range batches {
		data := pipeline.NewPageData(batch, g.cfg.pageTitle, g.cfg.stylesheet, g.cfg.backgroundPages)
		page, err := g.pages.Render(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("rendering document %d: %w", batch.Index, err)
		}
		res.Documents = append(res.Documents, Document{
			Index:  batch.Index,
			Name:   DocumentName(g.cfg.prefix, batch.Index),
			Cards:  len(batch.Cards),
			Titles: countTitles(batch.Cards),
			HTML:   []byte(page),
		})
	}
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.printer != nil {
		return g.printer.Close()
	}
	return nil
}

// DocumentName returns the HTML file name of the document at index.
func DocumentName(prefix string, index int) string {
	return fmt.Sprintf("%s-%d.html", prefix, index)
}

func countTitles(cards []pipeline.Card) int {
	n := 0
	for _, c := range cards {
		if c.Title {
			n++
		}
	}
	return n
}
