package assets

// AssetLoader defines the contract for loading notecard template sets.
// Implementations may load from embedded assets or a directory on disk.
type AssetLoader interface {
	// LoadTemplateSet loads a template set by name.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrIncompleteTemplateSet if some of its templates are missing.
	// Returns ErrInvalidSetName if the name contains invalid characters.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
