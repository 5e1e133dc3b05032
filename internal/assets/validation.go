package assets

import (
	"fmt"
	"strings"
)

// maxSetNameLength bounds set names; they become directory names.
const maxSetNameLength = 100

// ValidateSetName checks that a template set name names exactly one
// directory under templates/. Separators, dots and NUL bytes are rejected,
// which rules out "..", hidden directories and absolute paths.
func ValidateSetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSetName)
	}
	if len(name) > maxSetNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidSetName, len(name), maxSetNameLength)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidSetName, name)
	}
	return nil
}
