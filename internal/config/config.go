package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-notecards/internal/fileutil"
	"github.com/alnah/go-notecards/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRange      = errors.New("field out of range")
	ErrFieldValue      = errors.New("invalid field value")
)

// appDirName is the directory searched under os.UserConfigDir.
const appDirName = "go-notecards"

// Defaults applied when a key is absent.
const (
	DefaultInputPath = "gac-history-original.md"
	DefaultOutputDir = "gac-history"
	DefaultPrefix    = "gac-history"
)

// Markdown engines accepted by markdown.engine.
const (
	EngineStrong   = "strong"
	EngineGoldmark = "goldmark"
)

// Field limits.
const (
	MaxPathLength        = 4096
	MaxURLLength         = 2048 // Browser limit
	MaxPrefixLength      = 100
	MaxTitleLength       = 200
	MaxTemplateSetLength = 100
	MaxSegmentLength     = 100_000
	MaxTitlesPerDocument = 1_000
	MaxBackgroundPages   = 10_000
	MaxTimeout           = 10 * time.Minute
)

// Config holds all configuration for notecard generation.
// Zero numeric values and empty strings select the library defaults.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Segment  SegmentConfig  `yaml:"segment"`
	Document DocumentConfig `yaml:"document"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig defines the input source.
type InputConfig struct {
	Path string `yaml:"path"` // Markdown file to read
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // Created if missing
	Prefix string `yaml:"prefix"` // Files are named <prefix>-<n>.html
}

// SegmentConfig defines how the source is split.
type SegmentConfig struct {
	MaxLength int `yaml:"maxLength"` // Characters per segment (default: 700)
}

// DocumentConfig defines page assembly and scaffold options.
type DocumentConfig struct {
	TitlesPerDocument int    `yaml:"titlesPerDocument"` // default: 3
	Title             string `yaml:"title"`             // <title> of every page
	Stylesheet        string `yaml:"stylesheet"`        // href, relative to the output files
	BackgroundPages   int    `yaml:"backgroundPages"`   // Decorative pages (default: 100)
}

// MarkdownConfig selects the inline renderer.
type MarkdownConfig struct {
	Engine string `yaml:"engine"` // "strong" (default) or "goldmark"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath    string `yaml:"basePath"`    // Empty = use embedded assets
	TemplateSet string `yaml:"templateSet"` // Empty = "default"
}

// PDFConfig defines optional PDF printing.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s" (default: 30s)
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.prefix", c.Output.Prefix, MaxPrefixLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.stylesheet", c.Document.Stylesheet, MaxURLLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.templateSet", c.Assets.TemplateSet, MaxTemplateSetLength},
	}
	for _, f := range lengths {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.Prefix != "" {
		if err := fileutil.ValidateStem(c.Output.Prefix); err != nil {
			return fmt.Errorf("%w: output.prefix: %v", ErrFieldValue, err)
		}
	}

	if err := validateRange("segment.maxLength", c.Segment.MaxLength, MaxSegmentLength); err != nil {
		return err
	}
	if err := validateRange("document.titlesPerDocument", c.Document.TitlesPerDocument, MaxTitlesPerDocument); err != nil {
		return err
	}
	if err := validateRange("document.backgroundPages", c.Document.BackgroundPages, MaxBackgroundPages); err != nil {
		return err
	}

	switch strings.ToLower(c.Markdown.Engine) {
	case "", EngineStrong, EngineGoldmark:
		// valid
	default:
		return fmt.Errorf("%w: markdown.engine %q (must be %s or %s)", ErrFieldValue, c.Markdown.Engine, EngineStrong, EngineGoldmark)
	}

	if _, err := c.PDF.ParseTimeout(); err != nil {
		return err
	}

	return nil
}

// ParseTimeout returns pdf.timeout as a duration, or 0 when unset.
func (p PDFConfig) ParseTimeout() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout %q: %v", ErrFieldValue, p.Timeout, err)
	}
	if d <= 0 || d > MaxTimeout {
		return 0, fmt.Errorf("%w: pdf.timeout %s (must be >0 and <= %s)", ErrFieldRange, d, MaxTimeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRange checks 0 <= value <= maxValue. Zero selects the default.
func validateRange(fieldName string, value, maxValue int) error {
	if value < 0 || value > maxValue {
		return fmt.Errorf("%w: %s = %d (must be 0-%d)", ErrFieldRange, fieldName, value, maxValue)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// read gac-history-original.md and write gac-history/gac-history-<n>.html.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: DefaultInputPath},
		Output: OutputConfig{Dir: DefaultOutputDir, Prefix: DefaultPrefix},
		PDF:    PDFConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-notecards/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
