package assets

import "errors"

// Sentinel errors for template set loading.
var (
	// ErrTemplateSetNotFound indicates no file of the set exists.
	ErrTemplateSetNotFound = errors.New("template set not found")

	// ErrIncompleteTemplateSet indicates some of page.html, title.html and
	// body.html are missing.
	ErrIncompleteTemplateSet = errors.New("template set missing required template")

	// ErrInvalidSetName indicates a set name that cannot be used as a single
	// directory name.
	ErrInvalidSetName = errors.New("invalid template set name")

	// ErrInvalidBasePath indicates the asset path is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid asset path")

	// ErrAssetRead indicates an I/O error while reading a template file.
	ErrAssetRead = errors.New("failed to read template")

	// ErrPathTraversal indicates a template path resolving outside the asset path.
	ErrPathTraversal = errors.New("path traversal detected")
)
