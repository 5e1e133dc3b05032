package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.Path != DefaultInputPath {
		t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, DefaultInputPath)
	}
	if cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, DefaultOutputDir)
	}
	if cfg.Output.Prefix != DefaultPrefix {
		t.Errorf("Output.Prefix = %q, want %q", cfg.Output.Prefix, DefaultPrefix)
	}
	if cfg.Segment.MaxLength != 0 {
		t.Errorf("Segment.MaxLength = %d, want 0 (library default)", cfg.Segment.MaxLength)
	}
	if cfg.PDF.Enabled {
		t.Error("PDF.Enabled = true, want false")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error %q should name field %q", err, tt.fieldName)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name: "all fields set are valid",
			mutate: func(c *Config) {
				c.Segment.MaxLength = 350
				c.Document.TitlesPerDocument = 2
				c.Document.Title = "Review"
				c.Document.Stylesheet = "cards.css"
				c.Document.BackgroundPages = 10
				c.Markdown.Engine = "goldmark"
				c.Assets.TemplateSet = "compact"
				c.PDF = PDFConfig{Enabled: true, Timeout: "45s"}
			},
			wantErr: nil,
		},
		{
			name:    "engine is case insensitive",
			mutate:  func(c *Config) { c.Markdown.Engine = "Strong" },
			wantErr: nil,
		},
		{
			name:    "negative max length",
			mutate:  func(c *Config) { c.Segment.MaxLength = -1 },
			wantErr: ErrFieldRange,
		},
		{
			name:    "max length too large",
			mutate:  func(c *Config) { c.Segment.MaxLength = MaxSegmentLength + 1 },
			wantErr: ErrFieldRange,
		},
		{
			name:    "negative titles per document",
			mutate:  func(c *Config) { c.Document.TitlesPerDocument = -3 },
			wantErr: ErrFieldRange,
		},
		{
			name:    "background pages too large",
			mutate:  func(c *Config) { c.Document.BackgroundPages = MaxBackgroundPages + 1 },
			wantErr: ErrFieldRange,
		},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Markdown.Engine = "pandoc" },
			wantErr: ErrFieldValue,
		},
		{
			name:    "prefix with separator",
			mutate:  func(c *Config) { c.Output.Prefix = "../escape" },
			wantErr: ErrFieldValue,
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Document.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "prefix too long",
			mutate:  func(c *Config) { c.Output.Prefix = strings.Repeat("p", MaxPrefixLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "malformed timeout",
			mutate:  func(c *Config) { c.PDF.Timeout = "soon" },
			wantErr: ErrFieldValue,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.PDF.Timeout = "0s" },
			wantErr: ErrFieldRange,
		},
		{
			name:    "timeout too long",
			mutate:  func(c *Config) { c.PDF.Timeout = "1h" },
			wantErr: ErrFieldRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPDFConfig_ParseTimeout(t *testing.T) {
	tests := []struct {
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{timeout: "", want: 0},
		{timeout: "30s", want: 30 * time.Second},
		{timeout: "1m30s", want: 90 * time.Second},
		{timeout: "-5s", wantErr: true},
		{timeout: "30", wantErr: true},
	}

	for _, tt := range tests {
		got, err := PDFConfig{Timeout: tt.timeout}.ParseTimeout()
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeout(%q) error = %v, wantErr %v", tt.timeout, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeout(%q) = %v, want %v", tt.timeout, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `input:
  path: "notes/history.md"
output:
  dir: "cards"
  prefix: "us-history"
segment:
  maxLength: 500
document:
  titlesPerDocument: 2
  title: "US History"
markdown:
  engine: goldmark
pdf:
  enabled: true
  timeout: 45s
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != "notes/history.md" {
			t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "notes/history.md")
		}
		if cfg.Output.Dir != "cards" || cfg.Output.Prefix != "us-history" {
			t.Errorf("Output = %+v, want dir cards and prefix us-history", cfg.Output)
		}
		if cfg.Segment.MaxLength != 500 {
			t.Errorf("Segment.MaxLength = %d, want 500", cfg.Segment.MaxLength)
		}
		if cfg.Document.TitlesPerDocument != 2 {
			t.Errorf("Document.TitlesPerDocument = %d, want 2", cfg.Document.TitlesPerDocument)
		}
		if cfg.Document.Title != "US History" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "US History")
		}
		if cfg.Markdown.Engine != "goldmark" {
			t.Errorf("Markdown.Engine = %q, want goldmark", cfg.Markdown.Engine)
		}
		if !cfg.PDF.Enabled || cfg.PDF.Timeout != "45s" {
			t.Errorf("PDF = %+v, want enabled with 45s", cfg.PDF)
		}
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(configPath, []byte("segment:\n  maxLength: 300\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != DefaultInputPath {
			t.Errorf("Input.Path = %q, want default %q", cfg.Input.Path, DefaultInputPath)
		}
		if cfg.Output.Dir != DefaultOutputDir {
			t.Errorf("Output.Dir = %q, want default %q", cfg.Output.Dir, DefaultOutputDir)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("input: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := `segment:
  maxLength: 700
unknownField: "should fail"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "range.yaml")
		if err := os.WriteFile(configPath, []byte("segment:\n  maxLength: -10\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrFieldRange) {
			t.Errorf("error = %v, want ErrFieldRange", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("file mode permissions are not enforced")
		}
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unreadable.yaml")
		if err := os.WriteFile(configPath, []byte("input:\n  path: x.md\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chmod(configPath, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0600)

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml then yml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "cards.yml"), []byte("output:\n  prefix: fromyml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("cards")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Prefix != "fromyml" {
			t.Errorf("Output.Prefix = %q, want %q", cfg.Output.Prefix, "fromyml")
		}

		// .yaml takes precedence once present
		if err := os.WriteFile(filepath.Join(dir, "cards.yaml"), []byte("output:\n  prefix: fromyaml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		cfg, err = LoadConfig("cards")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Prefix != "fromyaml" {
			t.Errorf("Output.Prefix = %q, want %q", cfg.Output.Prefix, "fromyaml")
		}
	})

	t.Run("unknown name lists searched paths", func(t *testing.T) {
		_, err := LoadConfig("definitely-not-a-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "definitely-not-a-config-name.yml") {
			t.Errorf("error %q should list the searched paths", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("work")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("local paths = %q, want work.yaml then work.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), appDirName+"/work.") {
			t.Errorf("user path %q should live under %s", p, appDirName)
		}
	}
}
