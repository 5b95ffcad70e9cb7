// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/renameio/v2/maybe"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// DefaultExtensions are the file extensions treated as Markdown when walking
// directories.
var DefaultExtensions = []string{".md", ".markdown"}

// WriteFileAtomic replaces path with data through a temporary file renamed
// into place, so readers never observe a partial file. An existing file keeps
// its permission bits; a new one gets perm minus the umask. On Windows, where
// rename cannot replace a file atomically, the file is written in place.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := maybe.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// ValidateExtension checks that a configured Markdown extension is a bare
// suffix such as "md" or ".md".
func ValidateExtension(extension string) error {
	if strings.TrimPrefix(extension, ".") == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// NormalizeExtension lowercases ext and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// IsMarkdownPath reports whether path ends in one of exts, case-insensitively.
// Empty exts falls back to DefaultExtensions.
func IsMarkdownPath(path string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(exts, func(e string) bool {
		return NormalizeExtension(e) == ext
	})
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir returns true if the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "minimal" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "C:\styles\a.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like inline CSS rather than a name.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
