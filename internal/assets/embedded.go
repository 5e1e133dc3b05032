package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads template sets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet loads templates/{name}/ from embedded assets.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateSetName(name); err != nil {
		return nil, err
	}

	dir := path.Join("templates", name)
	if _, err := fs.Stat(templates, dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}

	contents := make(map[string]string, len(templateFiles))
	for _, file := range templateFiles {
		data, err := templates.ReadFile(path.Join(dir, file))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, file)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, file, err)
		}
		contents[file] = string(data)
	}

	return newTemplateSet(name, contents), nil
}

// TemplateSetNames lists the embedded template sets, sorted by name.
func (e *EmbeddedLoader) TemplateSetNames() []string {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// newTemplateSet maps file contents keyed by templateFiles entries.
func newTemplateSet(name string, contents map[string]string) *TemplateSet {
	return &TemplateSet{
		Name:  name,
		Page:  contents["page.html"],
		Title: contents["title.html"],
		Body:  contents["body.html"],
	}
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
