package assets

import (
	"errors"
)

// AssetResolver tries a chain of loaders in order. A loader is skipped only
// when it reports ErrTemplateSetNotFound; validation and I/O errors stop
// the chain. The embedded loader is always last.
type AssetResolver struct {
	chain  []AssetLoader
	custom bool
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded template sets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	if customBasePath == "" {
		return &AssetResolver{chain: []AssetLoader{NewEmbeddedLoader()}}, nil
	}

	fsLoader, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	return &AssetResolver{
		chain:  []AssetLoader{fsLoader, NewEmbeddedLoader()},
		custom: true,
	}, nil
}

// LoadTemplateSet returns the first set found along the chain.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	var err error
	for _, loader := range r.chain {
		var ts *TemplateSet
		ts, err = loader.LoadTemplateSet(name)
		if err == nil {
			return ts, nil
		}
		if !errors.Is(err, ErrTemplateSetNotFound) {
			return nil, err
		}
	}
	return nil, err
}

// HasCustomLoader returns true if a custom asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
