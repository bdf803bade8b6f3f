// Package scaffold creates a new sissigen project from a bundled template tree.
package scaffold

import (
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/fsutil"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
)

// root is the top-level directory inside the embedded tree.
const root = "structure"

//go:embed all:structure
var structure embed.FS

// FS returns the bundled project tree rooted at its top level.
func FS() fs.FS {
	sub, err := fs.Sub(structure, root)
	if err != nil {
		panic(err) // root is a compile-time constant
	}
	return sub
}

// Files lists the bundled files as sorted slash separated relative paths.
func Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to list bundled project files").Build()
	}
	sort.Strings(files)
	return files, nil
}

// Init writes the bundled tree into dst, creating subdirectories as needed
// and overwriting files that already exist. Files in dst that are not part of
// the bundle are left alone.
func Init(dst string) ([]string, error) {
	written, err := fsutil.CopyFS(structure, root, dst)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to write project structure").
			Fatal().
			WithContext("path", dst).
			Build()
	}
	sort.Strings(written)
	slog.Info("Initialized project", logfields.Path(dst), logfields.Count(len(written)))
	return written, nil
}
