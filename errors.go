package notecards

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrWriteDocument = errors.New("failed to write document")

	// Generator option validation errors.
	ErrInvalidMaxLength         = errors.New("invalid maximum segment length")
	ErrInvalidTitlesPerDocument = errors.New("invalid titles per document")
	ErrInvalidBackgroundPages   = errors.New("invalid background page count")
	ErrInvalidEngine            = errors.New("invalid markdown engine")
	ErrInvalidPrefix            = errors.New("invalid output file prefix")

	// Asset loading errors.
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidTemplate       = errors.New("invalid template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")

	// PDF printing errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
