package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index.md",
		"posts/.gitkeep",
		"static/style.css",
		"templates/contents.html",
		"templates/main.html",
	}, files)
}

func TestInit_ReproducesBundle(t *testing.T) {
	dst := t.TempDir()
	written, err := Init(dst)
	require.NoError(t, err)

	files, err := Files()
	require.NoError(t, err)
	assert.Equal(t, files, written)

	for _, f := range files {
		want, err := fs.ReadFile(FS(), f)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(f)))
		require.NoError(t, err)
		assert.Equal(t, want, got, f)
	}
	assert.DirExists(t, filepath.Join(dst, "posts"))
}

func TestInit_OverwritesAndKeepsOthers(t *testing.T) {
	dst := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "posts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "index.md"), []byte("mine"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "posts", "keep.md"), []byte("# Keep"), 0o644))

	_, err := Init(dst)
	require.NoError(t, err)

	want, err := fs.ReadFile(FS(), "index.md")
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dst, "index.md"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.FileExists(t, filepath.Join(dst, "posts", "keep.md"))
}

func TestInit_UnwritableDestination(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(dst, []byte("x"), 0o644))

	_, err := Init(dst)
	assert.Error(t, err)
}
