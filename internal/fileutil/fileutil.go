// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrStemEmpty         = errors.New("file name stem cannot be empty")
	ErrStemPathTraversal = errors.New("file name stem contains path separator or null byte")
	ErrNotDirectory      = errors.New("path exists and is not a directory")
)

// ValidateStem checks that s can be used as the start of a file name
// inside a directory, without escaping it.
func ValidateStem(s string) error {
	if s == "" {
		return ErrStemEmpty
	}
	if strings.ContainsAny(s, "/\\\x00") || s == "." || s == ".." {
		return ErrStemPathTraversal
	}
	return nil
}

// EnsureDir creates dir and any missing parents with perm.
// An existing directory is left untouched.
func EnsureDir(dir string, perm os.FileMode) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file in the target's directory
// and renames it over path, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if s looks like a file path (contains path separators).
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
