package notecards

// Notes:
// - Generate is tested end to end with the embedded templates; the layout
//   class is made deterministic with a fixed RandomSource.
// - The PDF printer is replaced by mockPrinter through withPrinter, so no
//   browser is needed. Real printing is covered by the integration tests.

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// constSource always returns v.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// withPrinter injects a pdfPrinter, bypassing the rod printer.
func withPrinter(p pdfPrinter) Option {
	return func(g *Generator) {
		g.printer = p
	}
}

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()

	opts = append([]Option{WithRandomSource(constSource(0.9))}, opts...)
	g, err := NewGenerator(opts...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

// yearSections builds n title sections, one per year starting at 1700.
func yearSections(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "### %d\n\nThe **colonies** met again.\n\n", 1700+i)
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// TestNewGenerator - Option validation
// ---------------------------------------------------------------------------

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults", opts: nil},
		{name: "goldmark engine", opts: []Option{WithEngine(EngineGoldmark)}},
		{name: "custom prefix", opts: []Option{WithPrefix("us-history")}},
		{name: "zero max length", opts: []Option{WithMaxSegmentLength(0)}, wantErr: ErrInvalidMaxLength},
		{name: "negative max length", opts: []Option{WithMaxSegmentLength(-5)}, wantErr: ErrInvalidMaxLength},
		{name: "huge max length", opts: []Option{WithMaxSegmentLength(MaxMaxSegmentLength + 1)}, wantErr: ErrInvalidMaxLength},
		{name: "zero titles per document", opts: []Option{WithTitlesPerDocument(0)}, wantErr: ErrInvalidTitlesPerDocument},
		{name: "negative background pages", opts: []Option{WithBackgroundPages(-1)}, wantErr: ErrInvalidBackgroundPages},
		{name: "unknown engine", opts: []Option{WithEngine("pandoc")}, wantErr: ErrInvalidEngine},
		{name: "empty prefix", opts: []Option{WithPrefix("")}, wantErr: ErrInvalidPrefix},
		{name: "prefix with separator", opts: []Option{WithPrefix("a/b")}, wantErr: ErrInvalidPrefix},
		{name: "unknown template set", opts: []Option{WithTemplateSet("nonexistent")}, wantErr: ErrTemplateSetNotFound},
		{name: "template set traversal", opts: []Option{WithTemplateSet("../default")}, wantErr: ErrInvalidAssetPath},
		{name: "missing asset path", opts: []Option{WithAssetPath("/nonexistent/assets/dir")}, wantErr: ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGenerator(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewGenerator() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGenerator() unexpected error: %v", err)
			}
			_ = g.Close()
		})
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithTimeout(%v) did not panic", d)
				}
			}()
			WithTimeout(d)
		}()
	}
}

func TestNewGenerator_PDFPrinterOnlyWhenEnabled(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	if g.printer != nil {
		t.Error("printer created without WithPDF")
	}

	g = newTestGenerator(t, WithPDF(), WithTimeout(5*time.Second))
	rp, ok := g.printer.(*rodPrinter)
	if !ok {
		t.Fatalf("printer = %T, want *rodPrinter", g.printer)
	}
	if rp.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", rp.timeout)
	}
}

// ---------------------------------------------------------------------------
// TestGenerate - End-to-end generation
// ---------------------------------------------------------------------------

func TestGenerate_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	for _, md := range []string{"", "   ", "\n\r\n"} {
		_, err := g.Generate(context.Background(), Input{Markdown: md})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("Generate(%q) error = %v, want ErrEmptyMarkdown", md, err)
		}
	}
}

func TestGenerate_DocumentsFollowTitleCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		markdown   string
		wantTitles []int
		wantCards  []int
	}{
		{
			name:       "single title section",
			markdown:   "### 1776 Independence declared.",
			wantTitles: []int{1},
			wantCards:  []int{1},
		},
		{
			name:       "three titles fill one document",
			markdown:   "### 1776 a ### 1777 b ### 1778 c",
			wantTitles: []int{3},
			wantCards:  []int{3},
		},
		{
			name:       "seven titles make three documents",
			markdown:   "### 1701 a ### 1702 b ### 1703 c ### 1704 d ### 1705 e ### 1706 f ### 1707 g",
			wantTitles: []int{3, 3, 1},
			wantCards:  []int{3, 3, 1},
		},
		{
			name:       "leading body gets its own document",
			markdown:   "Preface text. ### 1776 a **Opening Clue:** b",
			wantTitles: []int{0, 1},
			wantCards:  []int{1, 2},
		},
		{
			name:       "body cards stay with their title",
			markdown:   "### 1776 a **Opening x **Memorable y ### 1777 b ### 1778 c ### 1779 d",
			wantTitles: []int{3, 1},
			wantCards:  []int{5, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(t)
			result, err := g.Generate(context.Background(), Input{Markdown: tt.markdown})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(result.Documents) != len(tt.wantTitles) {
				t.Fatalf("got %d documents, want %d", len(result.Documents), len(tt.wantTitles))
			}
			for i, doc := range result.Documents {
				if doc.Index != i {
					t.Errorf("document %d has Index %d", i, doc.Index)
				}
				if want := DocumentName(DefaultPrefix, i); doc.Name != want {
					t.Errorf("document %d Name = %q, want %q", i, doc.Name, want)
				}
				if doc.Titles != tt.wantTitles[i] {
					t.Errorf("document %d Titles = %d, want %d", i, doc.Titles, tt.wantTitles[i])
				}
				if doc.Cards != tt.wantCards[i] {
					t.Errorf("document %d Cards = %d, want %d", i, doc.Cards, tt.wantCards[i])
				}
				if got := strings.Count(string(doc.HTML), `<div class="notebook-paper `); got != doc.Cards {
					t.Errorf("document %d renders %d cards, want %d", i, got, doc.Cards)
				}
			}
		})
	}
}

func TestGenerate_YearlessMarkerCountsAsTitle(t *testing.T) {
	t.Parallel()

	// The blank third heading still opens a title section, so the fourth
	// heading lands on a new page.
	g := newTestGenerator(t)
	md := "### 1700 a\n### 1701 b\n###  \n### 1702 c"
	result, err := g.Generate(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Segments != 4 {
		t.Errorf("Segments = %d, want 4", result.Segments)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(result.Documents))
	}
	if got := result.Documents[0].Titles; got != 3 {
		t.Errorf("document 0 has %d titles, want 3", got)
	}
	if got := result.Documents[1].Titles; got != 1 {
		t.Errorf("document 1 has %d titles, want 1", got)
	}
}

func TestGenerate_CardContent(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	md := "### 1787\n\nThe **Constitution** was signed.\n\n**Opening Clue:** Philadelphia"
	result, err := g.Generate(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Segments != 2 {
		t.Errorf("Segments = %d, want 2", result.Segments)
	}
	if len(result.Documents) != 1 {
		t.Fatalf("got %d documents, want 1", len(result.Documents))
	}

	page := string(result.Documents[0].HTML)
	for _, want := range []string{
		"1787",
		"<strong>Constitution</strong>",
		"<strong>Opening Clue:</strong> Philadelphia",
		DefaultStylesheet,
		"<title>" + DefaultPageTitle + "</title>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page should contain %q", want)
		}
	}
	if strings.Contains(page, "###") {
		t.Error("page should not contain the ### marker")
	}
	if strings.Contains(page, "\n\nThe") {
		t.Error("line breaks should have been flattened")
	}
}

func TestGenerate_GoldmarkEngineEscapesHTML(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, WithEngine(EngineGoldmark))
	result, err := g.Generate(context.Background(), Input{Markdown: "### 1791 Rights <script>x</script> and *liberty*"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	page := string(result.Documents[0].HTML)
	if strings.Contains(page, "<script>x</script>") {
		t.Error("raw HTML should be escaped by the goldmark engine")
	}
	if !strings.Contains(page, "<em>liberty</em>") {
		t.Error("emphasis should be rendered by the goldmark engine")
	}
}

func TestGenerate_ScaffoldOptions(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t,
		WithPageTitle("US History"),
		WithStylesheet("cards.css"),
		WithBackgroundPages(7),
		WithPrefix("us"),
		WithTitlesPerDocument(1),
		WithMaxSegmentLength(20),
	)
	result, err := g.Generate(context.Background(), Input{Markdown: "### 1776 one two three four five six ### 1777 x"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(result.Documents))
	}
	if result.Documents[1].Name != "us-1.html" {
		t.Errorf("Name = %q, want us-1.html", result.Documents[1].Name)
	}
	page := string(result.Documents[0].HTML)
	if !strings.Contains(page, "<title>US History</title>") {
		t.Error("page title not applied")
	}
	if !strings.Contains(page, `href="cards.css"`) {
		t.Error("stylesheet not applied")
	}
	if !regexp.MustCompile(`i < \s*7\s*;`).MatchString(page) {
		t.Error("background page count not applied")
	}
	// The 20-character budget splits the first section into several cards
	if result.Documents[0].Cards < 2 {
		t.Errorf("Cards = %d, want the first section split", result.Documents[0].Cards)
	}
}

func TestGenerate_LayoutClassIsOnlyDifference(t *testing.T) {
	t.Parallel()

	md := yearSections(8)
	strip := regexp.MustCompile(`notebook-paper-[ab]\b`)

	var pages []string
	for _, seed := range []uint64{1, 2} {
		g := newTestGenerator(t, WithRandomSource(rand.New(rand.NewPCG(seed, seed))))
		result, err := g.Generate(context.Background(), Input{Markdown: md})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		var all strings.Builder
		for _, doc := range result.Documents {
			all.Write(doc.HTML)
		}
		pages = append(pages, strip.ReplaceAllString(all.String(), "notebook-paper-x"))
	}
	if pages[0] != pages[1] {
		t.Error("output differs beyond the layout class")
	}
}

func TestGenerate_Canceled(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, Input{Markdown: "### 1776 a"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestDocumentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		index  int
		want   string
	}{
		{"gac-history", 0, "gac-history-0.html"},
		{"gac-history", 12, "gac-history-12.html"},
		{"cards", 3, "cards-3.html"},
	}
	for _, tt := range tests {
		if got := DocumentName(tt.prefix, tt.index); got != tt.want {
			t.Errorf("DocumentName(%q, %d) = %q, want %q", tt.prefix, tt.index, got, tt.want)
		}
	}
}
