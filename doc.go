// Package notecards turns a Markdown history outline into printable HTML
// notecard pages.
//
// # Quick Start
//
// Create a generator, generate the pages, and write them:
//
//	gen, err := notecards.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, notecards.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	files, err := gen.Write(ctx, result, "gac-history")
//
// Pages are named "<prefix>-<n>.html", numbered from 0.
//
// # Generation Pipeline
//
// The source goes through these stages:
//
//  1. Line endings are replaced by spaces (Flatten)
//  2. The text is split into segments of at most 700 characters; "###",
//     "**Opening" and "**Memorable" always open a new segment
//  3. Each segment is rendered inline (**bold** becomes <strong>)
//  4. Segments starting with "###" fill the title card template with the
//     four-digit year; all others fill the body card template
//  5. Cards are grouped so that every page holds three title sections
//  6. Each group is wrapped in the page scaffold
//
// Every card carries one of two layout classes chosen at random. The choice
// is cosmetic; WithRandomSource makes it reproducible.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := notecards.NewGenerator(
//	    notecards.WithMaxSegmentLength(500),
//	    notecards.WithTitlesPerDocument(2),
//	    notecards.WithEngine(notecards.EngineGoldmark),
//	    notecards.WithAssetPath("/path/to/custom/assets"),
//	)
//
// # Custom Templates
//
// A template set is a directory holding page.html, title.html and body.html:
//
//	assets/
//	└── templates/
//	    └── compact/
//	        ├── page.html
//	        ├── title.html
//	        └── body.html
//
// Sets found under WithAssetPath take precedence over the embedded ones.
//
// # PDF Output
//
// WithPDF prints every written page to PDF with headless Chrome (go-rod).
// Rod downloads a managed Chromium on first run (~/.cache/rod/browser/).
// For containers and CI environments, set ROD_NO_SANDBOX=1. Use
// ROD_BROWSER_BIN to specify a custom Chrome binary.
package notecards
