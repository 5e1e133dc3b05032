package notecards

import (
	"time"

	"github.com/alnah/go-notecards/internal/pipeline"
)

// Markdown engines.
const (
	// EngineStrong converts **bold** spans and passes everything else through.
	EngineStrong = "strong"
	// EngineGoldmark renders emphasis and code spans with goldmark and escapes HTML.
	EngineGoldmark = "goldmark"
)

// Generation defaults.
const (
	DefaultMaxSegmentLength  = pipeline.DefaultMaxSegmentLength
	DefaultTitlesPerDocument = pipeline.DefaultTitlesPerDocument
	DefaultBackgroundPages   = pipeline.DefaultBackgroundPages
	DefaultPageTitle         = pipeline.DefaultPageTitle
	DefaultStylesheet        = pipeline.DefaultStylesheet
	DefaultPrefix            = "gac-history"
	DefaultEngine            = EngineStrong
)

// Upper bounds accepted by NewGenerator.
const (
	MaxMaxSegmentLength  = 100_000
	MaxTitlesPerDocument = 1_000
	MaxBackgroundPages   = 10_000
)

// defaultTimeout bounds printing a single page to PDF.
const defaultTimeout = 30 * time.Second

// RandomSource supplies uniform values in [0, 1) for the cosmetic layout
// class of each card. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// Input contains the source document.
type Input struct {
	Markdown string // Markdown content (required)
}

// Document is one generated notecard page.
type Document struct {
	Index  int    // Sequential, from 0
	Name   string // File name, e.g. "gac-history-0.html"
	Cards  int    // Cards on the page
	Titles int    // Title cards on the page
	HTML   []byte // Complete HTML document
}

// Result holds the output of Generate.
type Result struct {
	Segments  int // Segments produced from the source
	Documents []Document
}

// WrittenFile reports where a document was written.
type WrittenFile struct {
	Document Document
	HTMLPath string
	PDFPath  string // Empty unless PDF printing is enabled
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	maxSegmentLength  int
	titlesPerDocument int
	engine            string
	prefix            string
	pageTitle         string
	stylesheet        string
	backgroundPages   int
	assetPath         string
	templateSet       string
	random            RandomSource
	pdf               bool
	timeout           time.Duration
}

// WithMaxSegmentLength sets the segment length budget in characters.
func WithMaxSegmentLength(n int) Option {
	return func(g *Generator) {
		g.cfg.maxSegmentLength = n
	}
}

// WithTitlesPerDocument sets how many title sections share one page.
func WithTitlesPerDocument(n int) Option {
	return func(g *Generator) {
		g.cfg.titlesPerDocument = n
	}
}

// WithEngine selects the Markdown engine: EngineStrong or EngineGoldmark.
func WithEngine(name string) Option {
	return func(g *Generator) {
		g.cfg.engine = name
	}
}

// WithPrefix sets the output file name prefix ("<prefix>-<n>.html").
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.cfg.prefix = prefix
	}
}

// WithPageTitle sets the <title> of every page.
func WithPageTitle(title string) Option {
	return func(g *Generator) {
		g.cfg.pageTitle = title
	}
}

// WithStylesheet sets the stylesheet href, relative to the output files.
func WithStylesheet(href string) Option {
	return func(g *Generator) {
		g.cfg.stylesheet = href
	}
}

// WithBackgroundPages sets how many decorative pages the page script scatters.
func WithBackgroundPages(n int) Option {
	return func(g *Generator) {
		g.cfg.backgroundPages = n
	}
}

// WithAssetPath loads template sets from dir/templates/<name>/ first,
// falling back to the embedded sets.
func WithAssetPath(dir string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = dir
	}
}

// WithTemplateSet selects the template set by name (default "default").
func WithTemplateSet(name string) Option {
	return func(g *Generator) {
		g.cfg.templateSet = name
	}
}

// WithRandomSource replaces the unseeded source used for layout classes.
// Tests use it to make the cosmetic class reproducible.
func WithRandomSource(src RandomSource) Option {
	return func(g *Generator) {
		g.cfg.random = src
	}
}

// WithPDF enables printing every written page to PDF with headless Chrome.
func WithPDF() Option {
	return func(g *Generator) {
		g.cfg.pdf = true
	}
}

// WithTimeout sets the per-page PDF printing timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("notecards: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}
