package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestFind_NonRecursiveSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"), "b")
	writeFile(t, filepath.Join(dir, "a.md"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")
	writeFile(t, filepath.Join(dir, "nested", "c.md"), "skip")
	writeFile(t, filepath.Join(dir, ".draft.md"), "skip")
	writeFile(t, filepath.Join(dir, ".md"), "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.md"), 0o755))

	got, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")}, got)
}

func TestFind_EmptyDirectory(t *testing.T) {
	got, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFind_MissingDirectoryIsSetupError(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "posts"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestFind_FileInsteadOfDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts")
	writeFile(t, path, "")

	_, err := Find(path)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.md")
	writeFile(t, path, "# Héllo\n")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "# Héllo\n", got)

	_, err = Read(filepath.Join(dir, "missing.md"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))

	bad := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe}, 0o644))
	_, err = Read(bad)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryContent))
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "posts/hello.md", want: "hello"},
		{path: "posts/2024-01-01.notes.md", want: "2024-01-01.notes"},
		{path: "noext", want: "noext"},
		{path: "posts/.md", want: ".md"},
		{path: "..md", want: "..md"},
		{path: ".draft.md", want: ".draft"},
		{path: "trailing.", want: "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}
