package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css", "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "vendor", "reset.css"), []byte("*{}"), 0o600))

	dst := filepath.Join(t.TempDir(), "static")
	require.NoError(t, CopyDir(src, dst))

	got, err := os.ReadFile(filepath.Join(dst, "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(got))

	info, err := os.Stat(filepath.Join(dst, "css", "vendor", "reset.css"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCopyDir_OverwritesAndMissingSource(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "a.txt"), []byte("old content"), 0o644))

	require.NoError(t, CopyDir(src, dst))
	got, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	assert.Error(t, CopyDir(filepath.Join(src, "missing"), dst))
}

func TestCopyFS(t *testing.T) {
	fsys := fstest.MapFS{
		"structure/index.md":             {Data: []byte("# Home\n")},
		"structure/templates/main.html":  {Data: []byte("{{ .html }}")},
		"structure/posts/.gitkeep":       {Data: nil},
		"structure/static/css/style.css": {Data: []byte("body{}")},
	}
	dst := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dst, "index.md"), []byte("old"), 0o644))

	written, err := CopyFS(fsys, "structure", dst)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"index.md",
		"templates/main.html",
		"posts/.gitkeep",
		"static/css/style.css",
	}, written)

	got, err := os.ReadFile(filepath.Join(dst, "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Home\n", string(got))
	assert.DirExists(t, filepath.Join(dst, "posts"))
	assert.FileExists(t, filepath.Join(dst, "static", "css", "style.css"))
}
