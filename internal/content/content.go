// Package content locates and reads Markdown source files.
package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

// Extension is the file suffix of a post source.
const Extension = ".md"

// Find returns the Markdown files directly inside dir, sorted lexically.
// Subdirectories are not descended into and hidden files are skipped.
func Find(dir string) ([]string, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "content directory not found").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	if !st.IsDir() {
		return nil, errors.ConfigError("content path is not a directory").WithContext("path", dir).Build()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to list content directory").
			WithContext("path", dir).
			Build()
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, Extension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// Read returns the full text of path. The file must be valid UTF-8.
func Read(path string) (string, error) {
	// #nosec G304 -- paths come from Find or the fixed site layout.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.FileSystemError("failed to read file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	if !utf8.Valid(data) {
		return "", errors.ContentError("file is not valid UTF-8").WithContext("path", path).Build()
	}
	return string(data), nil
}

// Stem returns the base name of path without its extension. Leading dots
// belong to the name, so ".md" has no extension and is its own stem.
func Stem(path string) string {
	base := filepath.Base(path)
	name := strings.TrimLeft(base, ".")
	return strings.TrimSuffix(base, filepath.Ext(name))
}
