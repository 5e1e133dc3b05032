package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	notecards "github.com/alnah/go-notecards"
	"github.com/alnah/go-notecards/internal/config"
	"github.com/alnah/go-notecards/internal/hints"
)

// runGenerateCmd runs generate and maps its error to an exit code.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) int {
	if err := runGenerate(ctx, args, env); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, formatError(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate reads the Markdown source, generates every document, and
// writes them to the output directory.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrUsage, len(positional))
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig(env.Stderr)

	cfg, err := loadEffectiveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if len(positional) == 1 {
		cfg.Input.Path = positional[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildOptions(flags, cfg)
	if err != nil {
		return err
	}

	start := env.Now()

	md, err := os.ReadFile(cfg.Input.Path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	gen, err := notecards.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = gen.Close() }()

	result, err := gen.Generate(ctx, notecards.Input{Markdown: string(md)})
	if err != nil {
		return err
	}

	files, err := gen.Write(ctx, result, cfg.Output.Dir)
	printWritten(env, flags.common, files)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d segments, %d documents in %v\n",
			result.Segments, len(result.Documents), env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// loadEffectiveConfig resolves the config file, then applies environment
// overrides. The config name comes from --config or NOTECARDS_CONFIG.
func loadEffectiveConfig(configFlag string, envCfg *envConfig) (*config.Config, error) {
	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags overrides config values with the flags that were set.
func mergeFlags(f *generateFlags, cfg *config.Config) error {
	if f.output.dir != "" {
		cfg.Output.Dir = f.output.dir
	}
	if f.output.prefix != "" {
		cfg.Output.Prefix = f.output.prefix
	}
	if f.segment.maxLength != 0 {
		cfg.Segment.MaxLength = f.segment.maxLength
	}
	if f.document.titlesPerDocument != 0 {
		cfg.Document.TitlesPerDocument = f.document.titlesPerDocument
	}
	if f.document.title != "" {
		cfg.Document.Title = f.document.title
	}
	if f.document.stylesheet != "" {
		cfg.Document.Stylesheet = f.document.stylesheet
	}
	if f.document.backgroundPages != 0 {
		cfg.Document.BackgroundPages = f.document.backgroundPages
	}
	if f.engine != "" {
		cfg.Markdown.Engine = f.engine
	}
	if f.assets.templateSet != "" {
		cfg.Assets.TemplateSet = f.assets.templateSet
	}
	if f.assets.assetPath != "" {
		cfg.Assets.BasePath = f.assets.assetPath
	}
	if f.pdf.enabled {
		cfg.PDF.Enabled = true
	}
	if f.pdf.timeout != "" {
		if _, err := time.ParseDuration(f.pdf.timeout); err != nil {
			return fmt.Errorf("%w: invalid --timeout %q: %v", ErrUsage, f.pdf.timeout, err)
		}
		cfg.PDF.Timeout = f.pdf.timeout
	}
	return nil
}

// buildOptions translates the effective config into generator options.
// Zero values are left to the generator defaults.
func buildOptions(f *generateFlags, cfg *config.Config) ([]notecards.Option, error) {
	var opts []notecards.Option
	if cfg.Output.Prefix != "" {
		opts = append(opts, notecards.WithPrefix(cfg.Output.Prefix))
	}
	if cfg.Document.Title != "" {
		opts = append(opts, notecards.WithPageTitle(cfg.Document.Title))
	}
	if cfg.Document.Stylesheet != "" {
		opts = append(opts, notecards.WithStylesheet(cfg.Document.Stylesheet))
	}
	if cfg.Document.BackgroundPages > 0 {
		opts = append(opts, notecards.WithBackgroundPages(cfg.Document.BackgroundPages))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, notecards.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.TemplateSet != "" {
		opts = append(opts, notecards.WithTemplateSet(cfg.Assets.TemplateSet))
	}
	if cfg.Segment.MaxLength > 0 {
		opts = append(opts, notecards.WithMaxSegmentLength(cfg.Segment.MaxLength))
	}
	if cfg.Document.TitlesPerDocument > 0 {
		opts = append(opts, notecards.WithTitlesPerDocument(cfg.Document.TitlesPerDocument))
	}
	if cfg.Markdown.Engine != "" {
		opts = append(opts, notecards.WithEngine(strings.ToLower(cfg.Markdown.Engine)))
	}
	if f.seedSet {
		opts = append(opts, notecards.WithRandomSource(rand.New(rand.NewPCG(f.seed, f.seed)))) // #nosec G404 -- cosmetic layout choice
	}
	if cfg.PDF.Enabled {
		opts = append(opts, notecards.WithPDF())
		timeout, err := cfg.PDF.ParseTimeout()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		if timeout > 0 {
			opts = append(opts, notecards.WithTimeout(timeout))
		}
	}
	return opts, nil
}

// printWritten reports the files written, honoring quiet and verbose.
func printWritten(env *Environment, common commonFlags, files []notecards.WrittenFile) {
	if common.quiet {
		return
	}
	for _, f := range files {
		if common.verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%d cards, %d titles)\n", f.HTMLPath, f.Document.Cards, f.Document.Titles)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", f.HTMLPath)
		}
		if f.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", f.PDFPath)
		}
	}
}
