package config

import "path/filepath"

// Fixed project layout, relative to the working directory.
const (
	PostsDirName     = "posts"
	IndexSourceName  = "index.md"
	TemplatesDirName = "templates"
	StaticDirName    = "static"
	OutputDirName    = "site"
	ListingName      = "index.html"
	ConfigFileName   = "sissigen.yaml"

	// PreviewPort is the TCP port the preview server listens on.
	PreviewPort = 8000
)

// Layout resolves the fixed project paths against a root directory.
type Layout struct {
	Root string
}

// NewLayout returns a Layout rooted at root ("." when empty).
func NewLayout(root string) Layout {
	if root == "" {
		root = "."
	}
	return Layout{Root: root}
}

func (l Layout) PostsDir() string     { return filepath.Join(l.Root, PostsDirName) }
func (l Layout) IndexSource() string  { return filepath.Join(l.Root, IndexSourceName) }
func (l Layout) TemplatesDir() string { return filepath.Join(l.Root, TemplatesDirName) }
func (l Layout) StaticDir() string    { return filepath.Join(l.Root, StaticDirName) }
func (l Layout) OutputDir() string    { return filepath.Join(l.Root, OutputDirName) }
func (l Layout) ConfigFile() string   { return filepath.Join(l.Root, ConfigFileName) }

// OutputStaticDir is where StaticDir is mirrored inside the output directory.
func (l Layout) OutputStaticDir() string { return filepath.Join(l.OutputDir(), StaticDirName) }

// ListingFile is the listing page. It is written at the project root, not
// inside the output directory.
func (l Layout) ListingFile() string { return filepath.Join(l.Root, ListingName) }

// WatchPaths lists the inputs whose changes affect a build.
func (l Layout) WatchPaths() []string {
	return []string{l.PostsDir(), l.TemplatesDir(), l.StaticDir(), l.IndexSource()}
}
