package site

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sissigen/internal/config"
	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/fsutil"
)

// Page is one rendered output file.
type Page struct {
	Path string
	Body string
}

// Writer materializes a build on disk.
type Writer struct {
	outputDir   string
	listingPath string
	staticSrc   string
	staticDst   string
}

// NewWriter returns a Writer for the given project layout.
func NewWriter(layout config.Layout) *Writer {
	return &Writer{
		outputDir:   layout.OutputDir(),
		listingPath: layout.ListingFile(),
		staticSrc:   layout.StaticDir(),
		staticDst:   layout.OutputStaticDir(),
	}
}

// Write removes and recreates the output directory, writes every page, writes
// the listing page, then mirrors the static directory into the output.
// The first I/O error aborts; earlier writes are not rolled back.
func (w *Writer) Write(pages []Page, listing string) error {
	if err := os.RemoveAll(w.outputDir); err != nil {
		return fsError(err, "failed to remove output directory", w.outputDir)
	}
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fsError(err, "failed to create output directory", w.outputDir)
	}
	for _, p := range pages {
		if err := writeFile(p.Path, p.Body); err != nil {
			return err
		}
	}
	if err := writeFile(w.listingPath, listing); err != nil {
		return err
	}
	if err := fsutil.CopyDir(w.staticSrc, w.staticDst); err != nil {
		return fsError(err, "failed to copy static directory", w.staticSrc)
	}
	return nil
}

func writeFile(path, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fsError(err, "failed to create directory", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil { // #nosec G306 -- published site files
		return fsError(err, "failed to write file", path)
	}
	return nil
}

func fsError(err error, msg, path string) error {
	return errors.FileSystemError(msg).
		WithCause(err).
		WithContext("path", path).
		Build()
}
