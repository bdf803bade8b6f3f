// Package fsutil holds directory copy helpers shared by the site writer and
// the scaffold initializer.
package fsutil

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// CopyDir recursively copies the directory tree src into dst, creating dst and
// overwriting existing files. File modes are preserved.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies a single regular file from src to dst, preserving its mode.
func CopyFile(src, dst string) error {
	// #nosec G304 -- src comes from a directory walk of a project path.
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	// #nosec G304 -- dst mirrors src under the output directory.
	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode().Perm())
}

// CopyFS writes every file below root in fsys into dst, keeping the relative
// layout. Directories are created with 0o755 and files with 0o644; existing
// files are overwritten. It returns the slash separated paths written.
func CopyFS(fsys fs.FS, root, dst string) ([]string, error) {
	var written []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := relSlash(root, p)
		target := filepath.Join(dst, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil { // #nosec G306 -- project files are world readable
			return err
		}
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}

func relSlash(root, p string) string {
	if root == "." || root == "" {
		return p
	}
	if p == root {
		return "."
	}
	return path.Clean(p[len(root)+1:])
}
