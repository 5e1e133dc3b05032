package main

import (
	"errors"
	"os"

	notecards "github.com/alnah/go-notecards"
	"github.com/alnah/go-notecards/internal/config"
)

// Exit codes for the notecards CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Pages generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, notecards.ErrBrowserConnect) ||
		errors.Is(err, notecards.ErrPageCreate) ||
		errors.Is(err, notecards.ErrPageLoad) ||
		errors.Is(err, notecards.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, notecards.ErrWriteDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRange) ||
		errors.Is(err, config.ErrFieldValue) ||
		errors.Is(err, notecards.ErrEmptyMarkdown) ||
		errors.Is(err, notecards.ErrInvalidMaxLength) ||
		errors.Is(err, notecards.ErrInvalidTitlesPerDocument) ||
		errors.Is(err, notecards.ErrInvalidBackgroundPages) ||
		errors.Is(err, notecards.ErrInvalidEngine) ||
		errors.Is(err, notecards.ErrInvalidPrefix) ||
		errors.Is(err, notecards.ErrTemplateSetNotFound) ||
		errors.Is(err, notecards.ErrIncompleteTemplateSet) ||
		errors.Is(err, notecards.ErrInvalidTemplate) ||
		errors.Is(err, notecards.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
