package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	dir    string
	prefix string
}

// segmentFlags holds segmentation flags.
type segmentFlags struct {
	maxLength int
}

// documentFlags holds page assembly and scaffold flags.
type documentFlags struct {
	titlesPerDocument int
	title             string
	stylesheet        string
	backgroundPages   int
}

// assetFlags holds template flags.
type assetFlags struct {
	templateSet string
	assetPath   string
}

// pdfFlags holds PDF printing flags.
type pdfFlags struct {
	enabled bool
	timeout string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	output   outputFlags
	segment  segmentFlags
	document documentFlags
	engine   string
	assets   assetFlags
	pdf      pdfFlags
	seed     uint64
	seedSet  bool // --seed given; 0 is a valid seed
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-document details and timing")
}

// addOutputFlags adds output destination flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (created if missing)")
	fs.StringVar(&f.prefix, "prefix", "", "output file prefix: <prefix>-<n>.html")
}

// addSegmentFlags adds segmentation flags to a FlagSet.
func addSegmentFlags(fs *flag.FlagSet, f *segmentFlags) {
	fs.IntVarP(&f.maxLength, "max-length", "m", 0, "segment length budget in characters (default 700)")
}

// addDocumentFlags adds page assembly flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.IntVar(&f.titlesPerDocument, "titles-per-doc", 0, "title sections per document (default 3)")
	fs.StringVar(&f.title, "title", "", "page <title> (default \"GAC History\")")
	fs.StringVar(&f.stylesheet, "stylesheet", "", "stylesheet href, relative to the output files")
	fs.IntVar(&f.backgroundPages, "background-pages", 0, "decorative background pages (default 100)")
}

// addAssetFlags adds template flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.templateSet, "template", "", "template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addPDFFlags adds PDF printing flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also print every page to PDF (requires Chrome)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page PDF timeout (e.g., 30s, 2m)")
}

// newGenerateFlagSet registers every generate flag on a new FlagSet.
func newGenerateFlagSet(f *generateFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(usage)

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addSegmentFlags(fs, &f.segment)
	addDocumentFlags(fs, &f.document)
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: strong, goldmark")
	addAssetFlags(fs, &f.assets)
	addPDFFlags(fs, &f.pdf)
	fs.Uint64Var(&f.seed, "seed", 0, "seed the layout class choice for reproducible output")

	fs.Usage = func() { printGenerateUsage(usage) }
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, usage io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f, usage)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.seedSet = fs.Changed("seed")

	return f, fs.Args(), nil
}

// parseConfigFlags parses the config command flags.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &commonFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
