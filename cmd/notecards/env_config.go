package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-notecards/internal/config"
)

// envPrefix marks the variables read by the CLI.
const envPrefix = "NOTECARDS_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // NOTECARDS_CONFIG: config file name or path
	Input       string // NOTECARDS_INPUT: Markdown source
	OutputDir   string // NOTECARDS_OUTPUT_DIR: output directory
	Prefix      string // NOTECARDS_PREFIX: output file prefix
	Engine      string // NOTECARDS_ENGINE: strong or goldmark
	TemplateSet string // NOTECARDS_TEMPLATE_SET: template set name
	AssetPath   string // NOTECARDS_ASSET_PATH: custom asset directory
	Timeout     string // NOTECARDS_TIMEOUT: PDF timeout, Go duration
}

// knownEnvVars lists valid NOTECARDS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NOTECARDS_CONFIG":       true,
	"NOTECARDS_INPUT":        true,
	"NOTECARDS_OUTPUT_DIR":   true,
	"NOTECARDS_PREFIX":       true,
	"NOTECARDS_ENGINE":       true,
	"NOTECARDS_TEMPLATE_SET": true,
	"NOTECARDS_ASSET_PATH":   true,
	"NOTECARDS_TIMEOUT":      true,
	"NOTECARDS_CONTAINER":    true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// An invalid NOTECARDS_TIMEOUT is ignored with a warning on w.
func loadEnvConfig(w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("NOTECARDS_CONFIG"),
		Input:       os.Getenv("NOTECARDS_INPUT"),
		OutputDir:   os.Getenv("NOTECARDS_OUTPUT_DIR"),
		Prefix:      os.Getenv("NOTECARDS_PREFIX"),
		Engine:      os.Getenv("NOTECARDS_ENGINE"),
		TemplateSet: os.Getenv("NOTECARDS_TEMPLATE_SET"),
		AssetPath:   os.Getenv("NOTECARDS_ASSET_PATH"),
	}

	if timeout := os.Getenv("NOTECARDS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = timeout
		} else {
			fmt.Fprintf(w, "warning: ignoring NOTECARDS_TIMEOUT=%q (want a positive duration like 45s)\n", timeout)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized NOTECARDS_* variables.
// Helps catch typos like NOTECARDS_OUTPUTDIR instead of NOTECARDS_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Prefix != "" {
		cfg.Output.Prefix = env.Prefix
	}
	if env.Engine != "" {
		cfg.Markdown.Engine = env.Engine
	}
	if env.TemplateSet != "" {
		cfg.Assets.TemplateSet = env.TemplateSet
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Timeout != "" {
		cfg.PDF.Timeout = env.Timeout
	}
}
